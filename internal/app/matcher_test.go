//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"lecture_note_service/internal/domain/matching"
	"lecture_note_service/internal/domain/slides"
	"lecture_note_service/internal/domain/transcripts"
	"lecture_note_service/internal/pkg/config"
	"lecture_note_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel returns a fixed completion, or an error when set. Prompts are
// recorded for assertions.
type stubModel struct {
	completion string
	err        error
	calls      int
	prompts    []string
}

func (s *stubModel) Complete(_ context.Context, prompt string, _ int) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.completion, nil
}

func testPipelineSettings() *config.PipelineSettings {
	return &config.PipelineSettings{
		DataDir:               "./data",
		OutputDir:             "./output",
		SiteDir:               "./docs",
		SiteTitle:             "강의 노트 모음",
		SlideDPI:              150,
		ChunkMinutes:          10,
		DefaultLectureMinutes: 150,
		WindowMultiplier:      3,
		OverlapBack:           2,
	}
}

func testSlides(n int) []*slides.SlideMeta {
	list := make([]*slides.SlideMeta, 0, n)
	for i := 1; i <= n; i++ {
		list = append(list, slides.NewSlideMeta(i, "", "슬라이드 내용"))
	}
	return list
}

func TestMatcher_NoSlides_Error(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	matcher, err := NewMatcher(nil, testPipelineSettings(), log)
	require.NoError(t, err)

	transcript := &transcripts.Transcript{Utterances: []*transcripts.Utterance{{Seconds: 0}}}
	_, err = matcher.Match(context.Background(), transcript, nil)
	assert.Error(t, err)
}

func TestMatcher_NoUtterances_Error(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	matcher, err := NewMatcher(nil, testPipelineSettings(), log)
	require.NoError(t, err)

	_, err = matcher.Match(context.Background(), &transcripts.Transcript{}, testSlides(3))
	assert.Error(t, err)
}

func TestMatcher_TimeBasedFallback(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	matcher, err := NewMatcher(nil, testPipelineSettings(), log)
	require.NoError(t, err)

	// 4 slides over a 40-minute recording, one utterance every 10 minutes.
	transcript := &transcripts.Transcript{Utterances: []*transcripts.Utterance{
		{Timestamp: "0:10", Seconds: 10, Content: "첫 구간"},
		{Timestamp: "10:00", Seconds: 600, Content: "둘째 구간"},
		{Timestamp: "20:00", Seconds: 1200, Content: "셋째 구간"},
		{Timestamp: "40:00", Seconds: 2400, Content: "마지막 구간"},
	}}

	matches, err := matcher.Match(context.Background(), transcript, testSlides(4))
	require.NoError(t, err)
	require.Len(t, matches, 4)

	assert.Equal(t, 1, matches[0].UtteranceCount)
	assert.Equal(t, 1, matches[1].UtteranceCount)
	assert.Equal(t, 1, matches[2].UtteranceCount)
	assert.Equal(t, 1, matches[3].UtteranceCount, "utterance at the end clamps to the last slide")

	assert.Equal(t, matching.ConfidenceLow, matches[0].Confidence)
	assert.Equal(t, "time-based fallback", matches[0].Notes)
	assert.False(t, matches[0].LLMVerified)
}

func TestMatcher_PageHintsOverrideFallback(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	matcher, err := NewMatcher(nil, testPipelineSettings(), log)
	require.NoError(t, err)

	// The early utterance names slide 3, the hint must outrank the
	// time-based placement on slide 1.
	transcript := &transcripts.Transcript{Utterances: []*transcripts.Utterance{
		{Timestamp: "0:10", Seconds: 10, Content: "p.3 을 먼저 봅시다", SlideNum: 3},
		{Timestamp: "30:00", Seconds: 1800, Content: "마무리"},
	}}

	matches, err := matcher.Match(context.Background(), transcript, testSlides(3))
	require.NoError(t, err)

	assert.Equal(t, 0, matches[0].UtteranceCount)
	require.Equal(t, 2, matches[2].UtteranceCount, "the hinted utterance joins the time-placed one")
	assert.Equal(t, matching.ConfidenceHigh, matches[2].Confidence)
	assert.Contains(t, matches[2].Utterances[1].Content, "p.3")
}

func TestMatcher_PageHintOutOfRangeIgnored(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	matcher, err := NewMatcher(nil, testPipelineSettings(), log)
	require.NoError(t, err)

	transcript := &transcripts.Transcript{Utterances: []*transcripts.Utterance{
		{Timestamp: "0:10", Seconds: 10, Content: "p.99 이야기", SlideNum: 99},
	}}

	matches, err := matcher.Match(context.Background(), transcript, testSlides(2))
	require.NoError(t, err)
	assert.Equal(t, 1, matches[1].UtteranceCount, "out-of-range hints fall back to time placement")
	assert.NotEqual(t, matching.ConfidenceHigh, matches[1].Confidence)
}

func TestMatcher_ModelAssignments(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	model := &stubModel{completion: `[
		{"slide_num": 1, "utterance_indices": [0], "confidence": "high"},
		{"slide_num": 2, "utterance_indices": [1, 2], "confidence": "medium"}
	]`}
	matcher, err := NewMatcher(model, testPipelineSettings(), log)
	require.NoError(t, err)

	transcript := &transcripts.Transcript{Utterances: []*transcripts.Utterance{
		{Timestamp: "0:10", Seconds: 10, Content: "인트로"},
		{Timestamp: "2:00", Seconds: 120, Content: "본론 시작"},
		{Timestamp: "4:00", Seconds: 240, Content: "본론 계속"},
	}}

	matches, err := matcher.Match(context.Background(), transcript, testSlides(3))
	require.NoError(t, err)
	require.Equal(t, 1, model.calls)

	assert.Equal(t, 1, matches[0].UtteranceCount)
	assert.Equal(t, matching.ConfidenceHigh, matches[0].Confidence)
	assert.True(t, matches[0].LLMVerified)

	assert.Equal(t, 2, matches[1].UtteranceCount)
	assert.Equal(t, matching.ConfidenceMedium, matches[1].Confidence)

	assert.Equal(t, 0, matches[2].UtteranceCount)
}

func TestMatcher_WindowMultiplierFromSettings(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	model := &stubModel{completion: `[]`}
	settings := testPipelineSettings()
	settings.WindowMultiplier = 1
	matcher, err := NewMatcher(model, settings, log)
	require.NoError(t, err)

	// 30 slides over a 21-minute recording give 14 slides per chunk, a
	// multiplier of 1 keeps the window at 14 instead of spanning the deck.
	transcript := &transcripts.Transcript{Utterances: []*transcripts.Utterance{
		{Timestamp: "1:00", Seconds: 60, Content: "첫 구간"},
		{Timestamp: "21:00", Seconds: 1260, Content: "뒷 구간"},
	}}

	_, err = matcher.Match(context.Background(), transcript, testSlides(30))
	require.NoError(t, err)

	require.Len(t, model.prompts, 2)
	assert.Contains(t, model.prompts[0], "(1~14번)")
}

func TestMatcher_ModelFailureSplitsEvenly(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	model := &stubModel{err: errors.New("api unavailable")}
	matcher, err := NewMatcher(model, testPipelineSettings(), log)
	require.NoError(t, err)

	transcript := &transcripts.Transcript{Utterances: []*transcripts.Utterance{
		{Timestamp: "0:10", Seconds: 10, Content: "하나"},
		{Timestamp: "1:00", Seconds: 60, Content: "둘"},
	}}

	matches, err := matcher.Match(context.Background(), transcript, testSlides(2))
	require.NoError(t, err)

	total := 0
	for _, match := range matches {
		total += match.UtteranceCount
		for range match.Utterances {
			assert.Equal(t, matching.ConfidenceLow, match.Confidence)
		}
	}
	assert.Equal(t, 2, total, "every utterance stays assigned after the fallback")
}
