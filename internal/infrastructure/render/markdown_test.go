//go:build unit
// +build unit

package render

import (
	"strings"
	"testing"
	"time"

	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/summaries"

	"github.com/stretchr/testify/assert"
)

func renderFixture() (lectures.LectureInfo, *summaries.LectureSummary, map[int]string) {
	info := lectures.ParseLectureName("01-이헌준-컴퓨팅시스템-260206")
	summary := &summaries.LectureSummary{
		Metadata: summaries.Metadata{
			LectureName: "01-이헌준-컴퓨팅시스템-260206",
			STTDuration: "94분 3초",
			TotalSlides: 2,
			PDFFiles:    []string{"slides.pdf"},
			TXTFiles:    []string{"stt.txt"},
			MainSpeaker: "이헌준",
		},
		Summaries: []*summaries.SlideSummary{
			{SlideNum: 1, KeyPoints: []string{"폰노이만 구조 소개", "CPU와 메모리의 분리"}, Category: summaries.CategoryLecture},
			{SlideNum: 2, KeyPoints: nil, Category: summaries.CategoryLecture},
		},
		QASection: []*summaries.QAItem{
			{Question: "캐시는 어디에 있나요?", Answer: "CPU 안에 있습니다.", SlideNum: 1},
		},
		KeyTakeaways: []string{"구조를 알면 성능이 보인다"},
	}
	images := map[int]string{1: "slides/slide_001.png", 2: "slides/slide_002.png"}
	return info, summary, images
}

func TestNoteBaseName(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		expected string
	}{
		{"Korean topic", "01-이헌준-컴퓨팅시스템-260206", "01-컴퓨팅시스템-강의노트"},
		{"Spaces become underscores", "12-김철수-Computing System for AI-260320", "12-Computing_System_for_AI-강의노트"},
		{"Punctuation stripped", "03-박영희-C++/Rust 비교!-260410", "03-CRust_비교-강의노트"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := lectures.ParseLectureName(tt.folder)
			assert.Equal(t, tt.expected, NoteBaseName(info))
		})
	}
}

func TestBuildMarkdown(t *testing.T) {
	info, summary, images := renderFixture()
	now := time.Date(2026, 2, 7, 10, 30, 0, 0, time.UTC)

	markdown := BuildMarkdown(info, summary, images, now)

	assert.True(t, strings.HasPrefix(markdown, "# 컴퓨팅시스템\n"))
	assert.Contains(t, markdown, "| **강연자** | 이헌준 |")
	assert.Contains(t, markdown, "| **날짜** | 2026년 2월 6일 |")
	assert.Contains(t, markdown, "| **강의 시간** | 94분 3초 |")
	assert.Contains(t, markdown, "| **슬라이드 수** | 2장 |")

	assert.Contains(t, markdown, "### 슬라이드 1")
	assert.Contains(t, markdown, "![슬라이드 1](slides/slide_001.png)")
	assert.Contains(t, markdown, "- 폰노이만 구조 소개")
	assert.Contains(t, markdown, "*(내용 없음)*", "slides without key points render the empty marker")

	assert.Contains(t, markdown, "### Q1. 캐시는 어디에 있나요?")
	assert.Contains(t, markdown, "**A:** CPU 안에 있습니다.")
	assert.Contains(t, markdown, "1. 구조를 알면 성능이 보인다")
	assert.Contains(t, markdown, "- 생성일시: 2026-02-07 10:30:00")
}

func TestBuildMarkdown_EmptySections(t *testing.T) {
	info, summary, images := renderFixture()
	summary.QASection = nil
	summary.KeyTakeaways = nil
	summary.Metadata.STTDuration = ""

	markdown := BuildMarkdown(info, summary, images, time.Now())

	assert.Contains(t, markdown, "*(질의응답 내용 없음)*")
	assert.Contains(t, markdown, "*(Key Takeaways 없음)*")
	assert.Contains(t, markdown, "| **강의 시간** | 알 수 없음 |")
}

func TestBuildMarkdown_TruncatesLongQuestions(t *testing.T) {
	info, summary, images := renderFixture()
	long := strings.Repeat("질문", 120)
	summary.QASection = []*summaries.QAItem{{Question: long, Answer: "답변"}}

	markdown := BuildMarkdown(info, summary, images, time.Now())

	assert.NotContains(t, markdown, "### Q1. "+long)
	assert.Contains(t, markdown, "...")
}

func TestBuildHTML(t *testing.T) {
	info, summary, images := renderFixture()
	now := time.Date(2026, 2, 7, 10, 30, 0, 0, time.UTC)

	html, err := BuildHTML(info, summary, images, now)
	assert.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "<title>컴퓨팅시스템")
	assert.Contains(t, page, "slides/slide_001.png")
	assert.Contains(t, page, "폰노이만 구조 소개")
	assert.Contains(t, page, "캐시는 어디에 있나요?")
	assert.Contains(t, page, "구조를 알면 성능이 보인다")
	assert.Contains(t, page, "lightbox")
	assert.Contains(t, page, "2026-02-07 10:30:00")
}

func TestBuildIndex_SortsNewestNumberFirst(t *testing.T) {
	entries := []IndexEntry{
		{Number: "01", Speaker: "이헌준", Topic: "컴퓨팅시스템", Date: "2026.02.06", Folder: "01-이헌준-컴퓨팅시스템-260206", HTMLFile: "01-컴퓨팅시스템-강의노트.html"},
		{Number: "12", Speaker: "김철수", Topic: "분산시스템", Date: "2026.03.20", Folder: "12-김철수-분산시스템-260320", HTMLFile: "12-분산시스템-강의노트.html"},
		{Number: "03", Speaker: "박영희", Topic: "운영체제", Date: "2026.02.20", Folder: "03-박영희-운영체제-260220", HTMLFile: "03-운영체제-강의노트.html"},
	}

	page, err := BuildIndex("강의 노트 모음", entries, time.Now())
	assert.NoError(t, err)

	html := string(page)
	first := strings.Index(html, "분산시스템")
	second := strings.Index(html, "운영체제")
	third := strings.Index(html, "컴퓨팅시스템")
	assert.True(t, first < second && second < third, "lectures should list newest number first")
	assert.Contains(t, html, "강의 노트 모음")
}

func TestBuildIndex_Empty(t *testing.T) {
	page, err := BuildIndex("강의 노트 모음", nil, time.Now())
	assert.NoError(t, err)
	assert.Contains(t, string(page), "아직 등록된 강의 노트가 없습니다")
}
