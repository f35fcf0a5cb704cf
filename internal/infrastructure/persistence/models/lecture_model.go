package models

import (
	"time"

	"lecture_note_service/internal/domain/lectures"
)

// LectureModel is the GORM database model for the lecture catalog
type LectureModel struct {
	ID                 string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated    time.Time `gorm:"not null"`
	DateTimeUpdated    time.Time `gorm:"not null"`
	Name               string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Speaker            string    `gorm:"type:varchar(100);index"`
	Topic              string    `gorm:"type:varchar(255)"`
	Date               string    `gorm:"type:varchar(20)"`
	SlideCount         int       `gorm:"not null;default:0"`
	TranscriptDuration string    `gorm:"type:varchar(50)"`
	Status             string    `gorm:"not null;type:varchar(20);index"`
}

// TableName specifies the table name for GORM
func (LectureModel) TableName() string {
	return "lectures"
}

// ToDomain converts GORM model to domain entity
func (m *LectureModel) ToDomain() *lectures.LectureMeta {
	return &lectures.LectureMeta{
		ID:                 m.ID,
		DateTimeCreated:    m.DateTimeCreated,
		DateTimeUpdated:    m.DateTimeUpdated,
		Name:               m.Name,
		Speaker:            m.Speaker,
		Topic:              m.Topic,
		Date:               m.Date,
		SlideCount:         m.SlideCount,
		TranscriptDuration: m.TranscriptDuration,
		Status:             m.Status,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LectureModel) FromDomain(l *lectures.LectureMeta) {
	m.ID = l.ID
	m.DateTimeCreated = l.DateTimeCreated
	m.DateTimeUpdated = l.DateTimeUpdated
	m.Name = l.Name
	m.Speaker = l.Speaker
	m.Topic = l.Topic
	m.Date = l.Date
	m.SlideCount = l.SlideCount
	m.TranscriptDuration = l.TranscriptDuration
	m.Status = l.Status
}
