//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/infrastructure/persistence/models"
	"lecture_note_service/internal/pkg/config"
	"lecture_note_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	LectureRepo  lectures.LectureRepository
	ArtifactRepo artifacts.ArtifactRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.LectureModel{}, &models.ArtifactModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	lectureRepo, err := NewGormLectureRepository(db, logger)
	require.NoError(t, err, "Failed to create lecture repository")

	artifactRepo, err := NewGormArtifactRepository(db, logger)
	require.NoError(t, err, "Failed to create artifact repository")

	return &TestContext{
		DB:           db,
		LectureRepo:  lectureRepo,
		ArtifactRepo: artifactRepo,
	}
}

// CreateTestLecture creates a catalog entry with default values
func CreateTestLecture(t *testing.T, name string) *lectures.LectureMeta {
	t.Helper()

	if name == "" {
		name = "01-김철수-분산시스템-260206"
	}

	return &lectures.LectureMeta{
		ID:                 uuid.NewString(),
		DateTimeCreated:    time.Now(),
		DateTimeUpdated:    time.Now(),
		Name:               name,
		Speaker:            "김철수",
		Topic:              "분산시스템",
		Date:               "2026.02.06",
		SlideCount:         24,
		TranscriptDuration: "94분 3초",
		Status:             lectures.StatusScanned,
	}
}

// CreateTestArtifact creates an artifact index entry with default values
func CreateTestArtifact(t *testing.T, lectureName, kind string) *artifacts.ArtifactMeta {
	t.Helper()

	if kind == "" {
		kind = artifacts.KindSlidesInfo
	}
	return artifacts.NewArtifactMeta(lectureName, kind, "/tmp/output/"+lectureName+"/"+kind+".json")
}
