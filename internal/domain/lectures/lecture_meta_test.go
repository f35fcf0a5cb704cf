//go:build unit
// +build unit

package lectures

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validLectureMeta() *LectureMeta {
	now := time.Now()
	return &LectureMeta{
		ID:                 uuid.New().String(),
		DateTimeCreated:    now,
		DateTimeUpdated:    now,
		Name:               "01-이헌준-컴퓨팅시스템-260206",
		Speaker:            "이헌준",
		Topic:              "컴퓨팅시스템",
		Date:               "2026.02.06",
		SlideCount:         24,
		TranscriptDuration: "94분 3초",
		Status:             StatusScanned,
	}
}

func TestLectureMeta_Validate(t *testing.T) {
	meta := validLectureMeta()
	assert.Nil(t, meta.Validate(), "Expected no validation errors for valid LectureMeta")

	badID := validLectureMeta()
	badID.ID = "not-a-uuid"
	assert.NotNil(t, badID.Validate(), "Expected validation error for invalid ID")

	badStatus := validLectureMeta()
	badStatus.Status = "in-flight"
	assert.NotNil(t, badStatus.Validate(), "Expected validation error for unknown status")

	missingName := validLectureMeta()
	missingName.Name = ""
	assert.NotNil(t, missingName.Validate(), "Expected validation error for empty name")
}

func TestLectureMetaQuery_Validate(t *testing.T) {
	query := NewLectureMetaQuery()
	assert.Nil(t, query.Validate())

	query.Status = StatusProcessed
	query.SortBy = "date"
	query.SortOrder = "desc"
	assert.Nil(t, query.Validate())

	query.SortBy = "mood"
	assert.NotNil(t, query.Validate(), "Expected validation error for unknown sort field")
}
