// Package summaries holds the per-slide summary, Q&A, and takeaway entities
// that make up a finished lecture summary.
package summaries

import (
	"fmt"

	"lecture_note_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Slide content categories assigned during summarizing.
const (
	CategoryLecture        = "lecture"
	CategoryQA             = "qa"
	CategoryIntro          = "intro"
	CategoryTangent        = "tangent"
	CategoryTechnicalIssue = "technical_issue"
)

// AnswerMaxLength caps a Q&A answer carried into the summary.
const AnswerMaxLength = 500

// SlideSummary is the distilled content spoken over one slide. JSON field
// names are the on-disk lecture_summary.json format. RawContent carries the
// slide's transcript text so nothing is lost when key points are missing.
type SlideSummary struct {
	SlideNum   int      `json:"slide_num"`
	KeyPoints  []string `json:"key_points"`
	IsQA       bool     `json:"is_qa"`
	Category   string   `json:"category,omitempty"`
	RawContent string   `json:"raw_content,omitempty"`
}

// QAItem is one audience question with the main speaker's answer.
type QAItem struct {
	Question  string `json:"question" validate:"max=1000"`
	Answer    string `json:"answer" validate:"max=2000"`
	SlideNum  int    `json:"slide_num,omitempty" validate:"min=0"`
	Asker     string `json:"asker,omitempty" validate:"max=100"`
	Timestamp string `json:"timestamp,omitempty" validate:"omitempty,timestampValidation"`
}

// Validate for validating QAItem struct
func (q *QAItem) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("timestampValidation", validators.TimestampValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Metadata describes the lecture the summary belongs to.
type Metadata struct {
	LectureName string   `json:"lecture_name"`
	STTDuration string   `json:"stt_duration"`
	TotalSlides int      `json:"total_slides"`
	PDFFiles    []string `json:"pdf_files"`
	TXTFiles    []string `json:"txt_files"`
	MainSpeaker string   `json:"main_speaker"`
}

// LectureSummary is the complete summarize output for a lecture.
type LectureSummary struct {
	Metadata     Metadata        `json:"metadata"`
	Summaries    []*SlideSummary `json:"summaries"`
	QASection    []*QAItem       `json:"qa_section"`
	KeyTakeaways []string        `json:"key_takeaways"`
}

// FindSlide returns the summary for the given slide, or nil.
func (l *LectureSummary) FindSlide(slideNum int) *SlideSummary {
	for _, s := range l.Summaries {
		if s.SlideNum == slideNum {
			return s
		}
	}
	return nil
}

// Movement records one key point relocated during refinement.
// refinement_log.json holds a list of these.
type Movement struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Point  string `json:"point"`
	Reason string `json:"reason"`
}
