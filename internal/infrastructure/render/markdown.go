// Package render produces the markdown and HTML note documents and the
// static site index.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/summaries"
)

// QuestionHeadingLength caps the question text shown in Q&A headings.
const QuestionHeadingLength = 100

var unsafeTopicChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

// NoteBaseName derives the note file name (without extension) from the
// lecture info, e.g. "12-Computing_System_for_AI-강의노트".
func NoteBaseName(info lectures.LectureInfo) string {
	safeTopic := unsafeTopicChars.ReplaceAllString(info.Topic, "")
	safeTopic = strings.ReplaceAll(strings.TrimSpace(safeTopic), " ", "_")
	return fmt.Sprintf("%s-%s-강의노트", info.Number, safeTopic)
}

// BuildMarkdown renders the complete lecture note as markdown. images maps
// slide numbers to their relative image paths inside the note directory.
func BuildMarkdown(info lectures.LectureInfo, summary *summaries.LectureSummary, images map[int]string, now time.Time) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
	}

	line("# " + info.Topic)
	line("")
	line("## 강의 정보")
	line("")
	line("| 항목 | 내용 |")
	line("|------|------|")
	line(fmt.Sprintf("| **강연자** | %s |", info.Speaker))
	line(fmt.Sprintf("| **날짜** | %s |", info.FormattedDate()))
	line(fmt.Sprintf("| **강의 시간** | %s |", orUnknown(summary.Metadata.STTDuration)))
	line(fmt.Sprintf("| **슬라이드 수** | %d장 |", summary.Metadata.TotalSlides))
	line("")
	line("---")
	line("")
	line("## 목차")
	line("")
	line("1. [슬라이드별 강의 내용](#슬라이드별-강의-내용)")
	line("2. [Q&A](#qa)")
	line("3. [Key Takeaways](#key-takeaways)")
	line("")
	line("---")
	line("")
	line("## 슬라이드별 강의 내용")
	line("")

	for _, s := range summary.Summaries {
		line(fmt.Sprintf("### 슬라이드 %d", s.SlideNum))
		line("")
		if img, ok := images[s.SlideNum]; ok {
			line(fmt.Sprintf("![슬라이드 %d](%s)", s.SlideNum, img))
			line("")
		}
		if len(s.KeyPoints) > 0 {
			line("**주요 내용:**")
			line("")
			for _, point := range s.KeyPoints {
				line("- " + point)
			}
			line("")
		} else {
			line("*(내용 없음)*")
			line("")
		}
		line("---")
		line("")
	}

	line("## Q&A")
	line("")
	if len(summary.QASection) > 0 {
		for i, qa := range summary.QASection {
			line(fmt.Sprintf("### Q%d. %s", i+1, truncateRunes(qa.Question, QuestionHeadingLength)))
			line("")
			line("**A:** " + qa.Answer)
			line("")
		}
	} else {
		line("*(질의응답 내용 없음)*")
		line("")
	}
	line("---")
	line("")

	line("## Key Takeaways")
	line("")
	if len(summary.KeyTakeaways) > 0 {
		for i, takeaway := range summary.KeyTakeaways {
			line(fmt.Sprintf("%d. %s", i+1, takeaway))
			line("")
		}
	} else {
		line("*(Key Takeaways 없음)*")
		line("")
	}
	line("---")
	line("")

	line("## 문서 정보")
	line("")
	line("- 생성일시: " + now.Format("2006-01-02 15:04:05"))
	line(fmt.Sprintf("- 원본 파일: %v", summary.Metadata.PDFFiles))
	line(fmt.Sprintf("- STT 파일: %v", summary.Metadata.TXTFiles))
	line("")

	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "알 수 없음"
	}
	return s
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
