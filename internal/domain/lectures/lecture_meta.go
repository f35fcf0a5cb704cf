package lectures

import (
	"errors"
	"fmt"
	"time"

	"lecture_note_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Lecture processing status constants
const (
	StatusScanned    = "scanned"
	StatusProcessing = "processing"
	StatusProcessed  = "processed"
	StatusFailed     = "failed"
	StatusPublished  = "published"
)

// LectureMeta entity
type LectureMeta struct {
	ID                 string    `validate:"required,uuid4"`
	DateTimeCreated    time.Time `validate:"required"`
	DateTimeUpdated    time.Time `validate:"required"`
	Name               string    `validate:"required,min=1,max=255"`
	Speaker            string    `validate:"max=100"`
	Topic              string    `validate:"max=255"`
	Date               string    `validate:"max=20"`
	SlideCount         int       `validate:"min=0"`
	TranscriptDuration string    `validate:"max=50"`
	Status             string    `validate:"required,statusValidation"`
}

// Validate for validating LectureMeta struct
func (l *LectureMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("statusValidation", validators.StatusValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(l)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// LectureMetaQuery filters catalog listings.
type LectureMetaQuery struct {
	Name      string `validate:"omitempty,max=255"`
	Speaker   string `validate:"omitempty,max=100"`
	Status    string `validate:"omitempty,oneof=scanned processing processed failed published"`
	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=name speaker date status date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewLectureMetaQuery creates a query with default paging.
func NewLectureMetaQuery() *LectureMetaQuery {
	return &LectureMetaQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "name",
		SortOrder: "asc",
	}
}

// Validate for validating LectureMetaQuery struct
func (q *LectureMetaQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
