// Package artifacts holds the pipeline artifact entity and the workspace
// contracts for reading and writing artifact files.
package artifacts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Artifact kinds tracked in the catalog.
const (
	KindSlidesInfo    = "slides_info"
	KindParsedSTT     = "stt_parsed"
	KindMetadata      = "metadata"
	KindSlideMatches  = "slide_matches"
	KindSummary       = "lecture_summary"
	KindRefinementLog = "refinement_log"
	KindMarkdown      = "markdown"
	KindHTML          = "html"
)

// On-disk artifact file names inside a lecture's output directory.
const (
	SlidesInfoFile    = "slides_info.json"
	ParsedSTTFile     = "stt_parsed.json"
	MetadataFile      = "metadata.json"
	SlideMatchesFile  = "slide_matches.json"
	SummaryFile       = "lecture_summary.json"
	RefinementLogFile = "refinement_log.json"
)

// ArtifactMeta records one artifact produced for a lecture.
type ArtifactMeta struct {
	ID              string    `validate:"required,uuid4"`
	LectureName     string    `validate:"required,min=1,max=250"`
	Kind            string    `validate:"required,min=1,max=50"`
	Path            string    `validate:"required,min=1,max=500"`
	DateTimeCreated time.Time `validate:"required"`
}

// NewArtifactMeta creates a catalog entry for a freshly written artifact.
func NewArtifactMeta(lectureName, kind, path string) *ArtifactMeta {
	return &ArtifactMeta{
		ID:              uuid.New().String(),
		LectureName:     lectureName,
		Kind:            kind,
		Path:            path,
		DateTimeCreated: time.Now(),
	}
}

// Validate checks the ArtifactMeta struct against field constraints.
func (a *ArtifactMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %v", err)
	}
	return nil
}
