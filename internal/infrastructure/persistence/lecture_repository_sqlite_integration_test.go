//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/infrastructure/persistence/models"
	"lecture_note_service/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLectureSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lecture := CreateTestLecture(t, "")

	err := ctx.LectureRepo.Create(context.Background(), lecture)
	require.NoError(t, err)

	var created models.LectureModel
	err = ctx.DB.First(&created, "id = ?", lecture.ID).Error
	require.NoError(t, err)
	assert.Equal(t, lecture.Name, created.Name)
	assert.Equal(t, lecture.Status, created.Status)
}

func TestLectureSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lecture := CreateTestLecture(t, "")
	require.NoError(t, ctx.LectureRepo.Create(context.Background(), lecture))

	fetched, err := ctx.LectureRepo.GetByID(context.Background(), lecture.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched)
	assert.Equal(t, lecture.ID, fetched.ID)
	assert.Equal(t, lecture.Speaker, fetched.Speaker)
}

func TestLectureSqliteRepository_GetByName(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lecture := CreateTestLecture(t, "02-이영희-운영체제-260213")
	require.NoError(t, ctx.LectureRepo.Create(context.Background(), lecture))

	fetched, err := ctx.LectureRepo.GetByName(context.Background(), "02-이영희-운영체제-260213")
	require.NoError(t, err)
	assert.Equal(t, lecture.ID, fetched.ID)
}

func TestLectureSqliteRepository_List_WithFiltersAndSorting(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := CreateTestLecture(t, "01-김철수-분산시스템-260206")
	second := CreateTestLecture(t, "02-이영희-운영체제-260213")
	second.Speaker = "이영희"
	second.Status = lectures.StatusProcessed

	require.NoError(t, ctx.LectureRepo.Create(context.Background(), first))
	require.NoError(t, ctx.LectureRepo.Create(context.Background(), second))

	query := lectures.NewLectureMetaQuery()
	query.Status = lectures.StatusProcessed
	processed, err := ctx.LectureRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, processed, 1)
	assert.Equal(t, second.ID, processed[0].ID)

	query = lectures.NewLectureMetaQuery()
	query.SortBy = "name"
	query.SortOrder = "desc"
	sorted, err := ctx.LectureRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, sorted, 2)
	assert.Equal(t, second.Name, sorted[0].Name)

	query = lectures.NewLectureMetaQuery()
	query.Limit = 1
	query.Offset = 1
	paged, err := ctx.LectureRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestLectureSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lecture := CreateTestLecture(t, "")
	require.NoError(t, ctx.LectureRepo.Create(context.Background(), lecture))

	lecture.Status = lectures.StatusPublished
	lecture.SlideCount = 30
	require.NoError(t, ctx.LectureRepo.UpdateByID(context.Background(), lecture))

	var updated models.LectureModel
	require.NoError(t, ctx.DB.First(&updated, "id = ?", lecture.ID).Error)
	assert.Equal(t, lectures.StatusPublished, updated.Status)
	assert.Equal(t, 30, updated.SlideCount)
}

func TestLectureSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lecture := CreateTestLecture(t, "")
	require.NoError(t, ctx.LectureRepo.Create(context.Background(), lecture))
	require.NoError(t, ctx.LectureRepo.DeleteByID(context.Background(), lecture.ID))

	var deleted models.LectureModel
	err := ctx.DB.First(&deleted, "id = ?", lecture.ID).Error
	assert.Error(t, err)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestLectureSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lecture, err := ctx.LectureRepo.GetByID(context.Background(), uuid.NewString())
	assert.Nil(t, lecture)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLectureSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	invalid := &lectures.LectureMeta{} // Missing required fields

	err := ctx.LectureRepo.Create(context.Background(), invalid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}
