package models

import (
	"time"

	"lecture_note_service/internal/domain/artifacts"
)

// ArtifactModel is the GORM database model for the artifact index
type ArtifactModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	LectureName     string    `gorm:"not null;type:varchar(250);uniqueIndex:idx_lecture_kind"`
	Kind            string    `gorm:"not null;type:varchar(50);uniqueIndex:idx_lecture_kind"`
	Path            string    `gorm:"not null;type:varchar(500)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ArtifactModel) TableName() string {
	return "artifacts"
}

// ToDomain converts GORM model to domain entity
func (m *ArtifactModel) ToDomain() *artifacts.ArtifactMeta {
	return &artifacts.ArtifactMeta{
		ID:              m.ID,
		LectureName:     m.LectureName,
		Kind:            m.Kind,
		Path:            m.Path,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ArtifactModel) FromDomain(a *artifacts.ArtifactMeta) {
	m.ID = a.ID
	m.LectureName = a.LectureName
	m.Kind = a.Kind
	m.Path = a.Path
	m.DateTimeCreated = a.DateTimeCreated
}
