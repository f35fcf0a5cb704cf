//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/matching"
	"lecture_note_service/internal/domain/slides"
	"lecture_note_service/internal/domain/summaries"
	"lecture_note_service/internal/domain/transcripts"
	"lecture_note_service/internal/infrastructure/workspace"
	"lecture_note_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summarizeTestLecture = "12-이헌준-Computing System for AI-260206"

// stubArtifactRepo records upserts without a database.
type stubArtifactRepo struct {
	upserts int
}

func (r *stubArtifactRepo) Upsert(_ context.Context, _ *artifacts.ArtifactMeta) error {
	r.upserts++
	return nil
}

func (r *stubArtifactRepo) ListByLecture(_ context.Context, _ string) ([]*artifacts.ArtifactMeta, error) {
	return nil, nil
}

func (r *stubArtifactRepo) DeleteByLecture(_ context.Context, _ string) error {
	return nil
}

func setupSummarizeArtifacts(t *testing.T) artifacts.Store {
	t.Helper()
	log := testutil.SetupTestLogger(t)

	store, err := workspace.NewFileStore(t.TempDir(), log)
	require.NoError(t, err)

	matches := []*matching.SlideMatch{
		{
			SlideNum:   1,
			Confidence: matching.ConfidenceLow,
			Utterances: []*transcripts.Utterance{
				{Speaker: "이헌준", Timestamp: "0:05", Seconds: 5, Content: "폰노이만 구조를 설명합니다."},
				{Speaker: "이헌준", Timestamp: "1:12", Seconds: 72, Content: "캐시 계층도 다룹니다."},
			},
		},
		{SlideNum: 2, Confidence: matching.ConfidenceUnknown},
	}
	for _, m := range matches {
		m.Recount()
	}
	_, err = store.SaveJSON(summarizeTestLecture, artifacts.SlideMatchesFile, matches)
	require.NoError(t, err)

	metadata := summaries.Metadata{
		LectureName: summarizeTestLecture,
		TotalSlides: 2,
		MainSpeaker: "이헌준",
	}
	_, err = store.SaveJSON(summarizeTestLecture, artifacts.MetadataFile, metadata)
	require.NoError(t, err)

	slideList := []*slides.SlideMeta{
		slides.NewSlideMeta(1, "slides/slide_001.png", "폰노이만 구조"),
		slides.NewSlideMeta(2, "slides/slide_002.png", "캐시 계층"),
	}
	_, err = store.SaveJSON(summarizeTestLecture, artifacts.SlidesInfoFile, slideList)
	require.NoError(t, err)

	return store
}

func TestSummarize_WithoutModel_KeepsRawContentOnly(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store := setupSummarizeArtifacts(t)
	repo := &stubArtifactRepo{}

	service, err := NewSummarizeService(nil, store, repo, log)
	require.NoError(t, err)

	summary, err := service.Summarize(context.Background(), summarizeTestLecture)
	require.NoError(t, err)
	require.Len(t, summary.Summaries, 2)

	degraded := summary.Summaries[0]
	assert.Empty(t, degraded.KeyPoints, "no model means no key points to invent")
	assert.Contains(t, degraded.RawContent, "[이헌준] 폰노이만 구조를 설명합니다.")
	assert.Contains(t, degraded.RawContent, "캐시 계층도 다룹니다.")

	empty := summary.Summaries[1]
	assert.Empty(t, empty.KeyPoints)
	assert.Empty(t, empty.RawContent)

	assert.Empty(t, summary.KeyTakeaways)
	assert.Equal(t, 1, repo.upserts)
}

func TestSummarize_ModelFailure_FallsBackToRawContent(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store := setupSummarizeArtifacts(t)
	model := &stubModel{err: assert.AnError}

	service, err := NewSummarizeService(model, store, &stubArtifactRepo{}, log)
	require.NoError(t, err)

	summary, err := service.Summarize(context.Background(), summarizeTestLecture)
	require.NoError(t, err)
	require.Len(t, summary.Summaries, 2)

	assert.Empty(t, summary.Summaries[0].KeyPoints)
	assert.Contains(t, summary.Summaries[0].RawContent, "폰노이만 구조를 설명합니다.")
}

func TestSummarize_ModelSuccess_KeepsKeyPointsAndRawContent(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store := setupSummarizeArtifacts(t)
	model := &stubModel{completion: `{"key_points": ["폰노이만 구조는 저장 프로그램 방식이다"], "is_qa": false, "category": "lecture"}`}

	service, err := NewSummarizeService(model, store, &stubArtifactRepo{}, log)
	require.NoError(t, err)

	summary, err := service.Summarize(context.Background(), summarizeTestLecture)
	require.NoError(t, err)
	require.Len(t, summary.Summaries, 2)

	summarized := summary.Summaries[0]
	assert.Equal(t, []string{"폰노이만 구조는 저장 프로그램 방식이다"}, summarized.KeyPoints)
	assert.Equal(t, "lecture", summarized.Category)
	assert.Contains(t, summarized.RawContent, "[이헌준] 폰노이만 구조를 설명합니다.")
}
