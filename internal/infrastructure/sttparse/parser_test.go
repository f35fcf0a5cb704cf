//go:build unit
// +build unit

package sttparse

import (
	"testing"

	"lecture_note_service/internal/domain/transcripts"
	"lecture_note_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ClovaFormat(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	transcript, err := parser.Parse(testutil.ClovaTranscript())
	require.NoError(t, err)

	assert.Equal(t, "참석자 회의록", transcript.Title)
	assert.Equal(t, "2026.02.06", transcript.Date)
	assert.Equal(t, "94분 3초", transcript.Duration)
	assert.Equal(t, []string{"이헌준", "학생A"}, transcript.Participants)
	require.Len(t, transcript.Utterances, 4)

	first := transcript.Utterances[0]
	assert.Equal(t, "이헌준", first.Speaker)
	assert.Equal(t, "0:05", first.Timestamp)
	assert.Equal(t, 5, first.Seconds)
	assert.Contains(t, first.Content, "수업을 시작하겠습니다")
	assert.Equal(t, 0, first.SlideNum)

	hinted := transcript.Utterances[1]
	assert.Equal(t, 72, hinted.Seconds)
	assert.Equal(t, 2, hinted.SlideNum, "page reference on the header should set the slide hint")
	assert.Equal(t, "먼저 폰노이만 구조부터 보겠습니다.", hinted.Content)

	question := transcript.Utterances[2]
	assert.Equal(t, "학생A", question.Speaker)
	assert.Contains(t, question.Content, "?")
}

func TestParse_HeaderWithTrailingHintStartsNewUtterance(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	raw := "이헌준 0:05\n시작합니다.\n이헌준 1:12 p.5\n다섯 번째 장입니다.\n"
	transcript, err := parser.Parse(raw)
	require.NoError(t, err)

	require.Len(t, transcript.Utterances, 2)
	assert.Equal(t, 0, transcript.Utterances[0].SlideNum)
	assert.Equal(t, 72, transcript.Utterances[1].Seconds)
	assert.Equal(t, 5, transcript.Utterances[1].SlideNum)
}

func TestParse_ContentDigitsAreNotSlideHints(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	raw := "이헌준 0:05\n여기서 (3) 항목과 12p 출력을 설명합니다.\n"
	transcript, err := parser.Parse(raw)
	require.NoError(t, err)

	require.Len(t, transcript.Utterances, 1)
	assert.Equal(t, 0, transcript.Utterances[0].SlideNum, "digits inside speech stay speech")
}

func TestParse_PageBlockFormat(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	transcript, err := parser.Parse(testutil.PageBlockTranscript())
	require.NoError(t, err)

	assert.Equal(t, "컴퓨팅 시스템 강의", transcript.Title)
	assert.Equal(t, []string{"이헌준"}, transcript.Participants)
	assert.Equal(t, "3분 3초", transcript.Duration)
	require.Len(t, transcript.Utterances, 3)

	assert.Equal(t, "이헌준", transcript.Utterances[0].Speaker)
	assert.Equal(t, 1, transcript.Utterances[0].SlideNum, "page range blocks use the range start")
	assert.Equal(t, 1, transcript.Utterances[1].SlideNum)
	assert.Equal(t, 3, transcript.Utterances[2].SlideNum)
	assert.Equal(t, "수업을 시작하겠습니다.", transcript.Utterances[0].Content)
}

func TestParse_PageBlockTimestampsFollowBlockStart(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	transcript, err := parser.Parse(testutil.PageBlockTranscript())
	require.NoError(t, err)
	require.Len(t, transcript.Utterances, 3)

	// Both utterances of the first block carry the block's start time, the
	// next block's range must not bleed backwards.
	assert.Equal(t, 0, transcript.Utterances[0].Seconds)
	assert.Equal(t, "0:00", transcript.Utterances[0].Timestamp)
	assert.Equal(t, 0, transcript.Utterances[1].Seconds)
	assert.Equal(t, 183, transcript.Utterances[2].Seconds)
	assert.Equal(t, "3:03", transcript.Utterances[2].Timestamp)
}

func TestParse_NoUtterances_EmptyTranscript(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	transcript, err := parser.Parse("아무 내용 없음\n\n그냥 텍스트")
	require.NoError(t, err)
	assert.Empty(t, transcript.Utterances)
}

func TestParse_MultilineContentJoined(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	raw := "이헌준 0:10\n첫 줄입니다.\n둘째 줄입니다.\n"
	transcript, err := parser.Parse(raw)
	require.NoError(t, err)
	require.Len(t, transcript.Utterances, 1)
	assert.Equal(t, "첫 줄입니다. 둘째 줄입니다.", transcript.Utterances[0].Content)
}

func TestMerge_OffsetsByLastTimestamp(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	first := &transcripts.Transcript{
		Title:        "컴퓨팅 시스템 강의",
		Date:         "2026.02.06",
		Duration:     "94분 3초",
		Participants: []string{"이헌준"},
		Utterances: []*transcripts.Utterance{
			{Speaker: "이헌준", Timestamp: "0:05", Seconds: 5, Content: "첫 파일"},
			{Speaker: "이헌준", Timestamp: "5:00", Seconds: 300, Content: "첫 파일 끝"},
		},
	}
	second := &transcripts.Transcript{
		Participants: []string{"학생A", "이헌준"},
		Utterances: []*transcripts.Utterance{
			{Speaker: "학생A", Timestamp: "0:10", Seconds: 10, Content: "둘째 파일"},
		},
	}

	merged := parser.Merge([]*transcripts.Transcript{first, second})
	require.Len(t, merged.Utterances, 3)

	// The second file shifts by the last timestamp merged so far. The
	// declared 94분 3초 belongs to the recorder, not the utterances.
	assert.Equal(t, 310, merged.Utterances[2].Seconds)
	assert.Equal(t, "5:10", merged.Utterances[2].Timestamp)
	assert.Equal(t, "컴퓨팅 시스템 강의", merged.Title)
	assert.Equal(t, "2026.02.06", merged.Date)
	assert.Equal(t, "94분 3초", merged.Duration)
	assert.Equal(t, []string{"이헌준", "학생A"}, merged.Participants)
}

func TestMerge_ChainsOffsetsAcrossParts(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	first := &transcripts.Transcript{
		Utterances: []*transcripts.Utterance{
			{Timestamp: "5:00", Seconds: 300, Content: "내용"},
		},
	}
	second := &transcripts.Transcript{
		Utterances: []*transcripts.Utterance{
			{Timestamp: "1:00", Seconds: 60, Content: "내용"},
		},
	}
	third := &transcripts.Transcript{
		Utterances: []*transcripts.Utterance{
			{Timestamp: "0:30", Seconds: 30, Content: "내용"},
		},
	}

	merged := parser.Merge([]*transcripts.Transcript{first, second, third})
	require.Len(t, merged.Utterances, 3)
	assert.Equal(t, 360, merged.Utterances[1].Seconds)
	assert.Equal(t, "6:00", merged.Utterances[1].Timestamp)
	assert.Equal(t, 390, merged.Utterances[2].Seconds)
	assert.Equal(t, "6:30", merged.Utterances[2].Timestamp)
}

func TestMerge_TimestampsStayMinuteBasedPastAnHour(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	parser, err := NewParser(log)
	require.NoError(t, err)

	first := &transcripts.Transcript{
		Utterances: []*transcripts.Utterance{
			{Timestamp: "93:53", Seconds: 5633, Content: "내용"},
		},
	}
	second := &transcripts.Transcript{
		Utterances: []*transcripts.Utterance{
			{Timestamp: "0:10", Seconds: 10, Content: "내용"},
		},
	}

	merged := parser.Merge([]*transcripts.Transcript{first, second})
	require.Len(t, merged.Utterances, 2)
	assert.Equal(t, 5643, merged.Utterances[1].Seconds)
	assert.Equal(t, "94:03", merged.Utterances[1].Timestamp)
}

func TestExtractSlideHint(t *testing.T) {
	tests := []struct {
		content  string
		expected int
	}{
		{"p.5 내용을 봅시다", 5},
		{"이제 12p 로 넘어갑니다", 12},
		{"[7] 그림을 보면", 7},
		{"(3) 번 슬라이드", 3},
		{"5페이지 를 펴세요", 5},
		{"페이지 9 입니다", 9},
		{"slide 4 shows the cache", 4},
		{"아무 힌트 없음", 0},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSlideHint(tt.content))
		})
	}
}
