//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactSqliteRepository_Upsert_CreatesAndReplaces(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	lectureName := "01-김철수-분산시스템-260206"

	first := CreateTestArtifact(t, lectureName, artifacts.KindSummary)
	require.NoError(t, ctx.ArtifactRepo.Upsert(context.Background(), first))

	// Same kind again replaces the path instead of adding a row
	second := CreateTestArtifact(t, lectureName, artifacts.KindSummary)
	second.Path = "/tmp/output/rewritten.json"
	require.NoError(t, ctx.ArtifactRepo.Upsert(context.Background(), second))

	list, err := ctx.ArtifactRepo.ListByLecture(context.Background(), lectureName)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "/tmp/output/rewritten.json", list[0].Path)
}

func TestArtifactSqliteRepository_ListByLecture(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	lectureName := "01-김철수-분산시스템-260206"

	require.NoError(t, ctx.ArtifactRepo.Upsert(context.Background(), CreateTestArtifact(t, lectureName, artifacts.KindSlidesInfo)))
	require.NoError(t, ctx.ArtifactRepo.Upsert(context.Background(), CreateTestArtifact(t, lectureName, artifacts.KindParsedSTT)))
	require.NoError(t, ctx.ArtifactRepo.Upsert(context.Background(), CreateTestArtifact(t, "02-이영희-운영체제-260213", artifacts.KindSlidesInfo)))

	list, err := ctx.ArtifactRepo.ListByLecture(context.Background(), lectureName)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestArtifactSqliteRepository_DeleteByLecture(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	lectureName := "01-김철수-분산시스템-260206"

	require.NoError(t, ctx.ArtifactRepo.Upsert(context.Background(), CreateTestArtifact(t, lectureName, artifacts.KindSlidesInfo)))
	require.NoError(t, ctx.ArtifactRepo.Upsert(context.Background(), CreateTestArtifact(t, lectureName, artifacts.KindMarkdown)))

	require.NoError(t, ctx.ArtifactRepo.DeleteByLecture(context.Background(), lectureName))

	list, err := ctx.ArtifactRepo.ListByLecture(context.Background(), lectureName)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestArtifactSqliteRepository_Upsert_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	invalid := &artifacts.ArtifactMeta{} // Missing required fields

	err := ctx.ArtifactRepo.Upsert(context.Background(), invalid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}
