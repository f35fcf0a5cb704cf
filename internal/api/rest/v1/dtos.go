package v1

import (
	"fmt"
	"time"

	"lecture_note_service/internal/domain/summaries"
)

// ErrorResponse is the uniform error payload of the API.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a confirmation message for write operations.
type InfoResponse struct {
	Message string `json:"message"`
}

// LectureMetaResponse is the catalog entry payload.
type LectureMetaResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Speaker            string    `json:"speaker"`
	Topic              string    `json:"topic"`
	Date               string    `json:"date"`
	SlideCount         int       `json:"slide_count"`
	TranscriptDuration string    `json:"transcript_duration"`
	Status             string    `json:"status"`
	DateTimeCreated    time.Time `json:"date_time_created"`
	DateTimeUpdated    time.Time `json:"date_time_updated"`
}

// UpdateKeyPointsRequest replaces the key points of one slide.
type UpdateKeyPointsRequest struct {
	KeyPoints []string `json:"key_points"`
}

// Validate checks the UpdateKeyPointsRequest payload
func (r *UpdateKeyPointsRequest) Validate() error {
	if r.KeyPoints == nil {
		return fmt.Errorf("key_points must be provided")
	}
	return nil
}

// UpdateQARequest replaces the Q&A section.
type UpdateQARequest struct {
	Items []*summaries.QAItem `json:"items"`
}

// Validate checks the UpdateQARequest payload
func (r *UpdateQARequest) Validate() error {
	if r.Items == nil {
		return fmt.Errorf("items must be provided")
	}
	for i, item := range r.Items {
		if item == nil {
			continue
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// UpdateTakeawaysRequest replaces the takeaway list.
type UpdateTakeawaysRequest struct {
	Takeaways []string `json:"takeaways"`
}

// Validate checks the UpdateTakeawaysRequest payload
func (r *UpdateTakeawaysRequest) Validate() error {
	if r.Takeaways == nil {
		return fmt.Errorf("takeaways must be provided")
	}
	return nil
}

// RenderResponse returns the paths of the rendered note documents.
type RenderResponse struct {
	MarkdownPath string `json:"markdown_path"`
	HTMLPath     string `json:"html_path"`
}
