// Package sttparse parses speech-to-text export files into transcripts.
// Two export formats are recognized: the plain speaker/timestamp format and
// the page-block format with explicit slide ranges.
package sttparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lecture_note_service/internal/domain/transcripts"
	"lecture_note_service/internal/pkg/logger"
)

var (
	// "이헌준 1:12" or "이헌준 1:02:35", speaker name then timestamp, with an
	// optional remainder carrying a page hint ("이헌준 1:12 p.5").
	utteranceHeaderPattern = regexp.MustCompile(`^(.+?)\s+(\d{1,2}:\d{2}(?::\d{2})?)(?:\s+(.*))?$`)
	// "2026.02.06 오후 7:00 ・ 94분 3초"
	dateLinePattern = regexp.MustCompile(`^(\d{4}\.\d{2}\.\d{2})\s.*[・·]\s*(.+)$`)
	// "[Page 3-5: 제목]" or "[Page 3: 제목]"
	pageBlockPattern = regexp.MustCompile(`^\[Page\s+(\d+)(?:\s*-\s*(\d+))?\s*(?::\s*(.*?))?\]$`)
	// "(1:12 ~ 3:45)"
	timeRangePattern = regexp.MustCompile(`^\((\d{1,2}:\d{2}(?::\d{2})?)\s*~\s*(\d{1,2}:\d{2}(?::\d{2})?)\)$`)
	// "화자명: 발화 내용"
	speakerLinePattern = regexp.MustCompile(`^(.+?):\s*(.+)$`)
)

// Slide references on an utterance header, e.g. "p.5", "5페이지", "slide 5", "[5]".
var slideHintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bp\.?\s*(\d{1,3})\b`),
	regexp.MustCompile(`\b(\d{1,3})\s*p\b`),
	regexp.MustCompile(`\[(\d{1,3})\]`),
	regexp.MustCompile(`\((\d{1,3})\)`),
	regexp.MustCompile(`(\d{1,3})\s*페이지`),
	regexp.MustCompile(`페이지\s*(\d{1,3})`),
	regexp.MustCompile(`(?i)\bslide\s*(\d{1,3})\b`),
}

type sttParser struct {
	logger logger.Logger
}

// NewParser creates the STT transcript parser.
func NewParser(logger logger.Logger) (transcripts.Parser, error) {
	return &sttParser{logger: logger}, nil
}

func (p *sttParser) Parse(raw string) (*transcripts.Transcript, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if isPageBlockFormat(lines) {
		return p.parsePageBlocks(lines)
	}
	return p.parsePlain(lines)
}

func isPageBlockFormat(lines []string) bool {
	for _, line := range lines {
		if pageBlockPattern.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

func (p *sttParser) parsePlain(lines []string) (*transcripts.Transcript, error) {
	t := &transcripts.Transcript{}
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			t.Title = trimmed
			break
		}
	}

	var current *transcripts.Utterance
	flush := func() {
		if current != nil && current.Content != "" {
			t.Utterances = append(t.Utterances, current)
			t.AddParticipant(current.Speaker)
		}
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if m := dateLinePattern.FindStringSubmatch(trimmed); m != nil && t.Date == "" {
			t.Date = m[1]
			t.Duration = strings.TrimSpace(m[2])
			continue
		}
		if m := utteranceHeaderPattern.FindStringSubmatch(trimmed); m != nil {
			if secs, err := transcripts.ParseTimestamp(m[2]); err == nil {
				flush()
				current = &transcripts.Utterance{
					Speaker:   strings.TrimSpace(m[1]),
					Timestamp: m[2],
					Seconds:   secs,
					SlideNum:  ExtractSlideHint(m[3]),
				}
				continue
			}
		}
		if current != nil {
			if current.Content != "" {
				current.Content += " "
			}
			current.Content += trimmed
		}
	}
	flush()

	// A file with no recognizable utterances is still a valid transcript,
	// the lecture may simply have an empty recording part.
	p.logger.Info(fmt.Sprintf("Parsed %d utterances (plain format)", len(t.Utterances)))
	return t, nil
}

func (p *sttParser) parsePageBlocks(lines []string) (*transcripts.Transcript, error) {
	t := &transcripts.Transcript{}
	currentSlide := 0
	blockStart := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := pageBlockPattern.FindStringSubmatch(trimmed); m != nil {
			currentSlide, _ = strconv.Atoi(m[1])
			continue
		}
		if m := timeRangePattern.FindStringSubmatch(trimmed); m != nil {
			if secs, err := transcripts.ParseTimestamp(m[1]); err == nil {
				blockStart = secs
			}
			continue
		}
		if m := speakerLinePattern.FindStringSubmatch(trimmed); m != nil {
			if currentSlide == 0 {
				if t.Title == "" {
					t.Title = trimmed
				}
				continue
			}
			u := &transcripts.Utterance{
				Speaker:   strings.TrimSpace(m[1]),
				Timestamp: transcripts.FormatTimestamp(blockStart),
				Seconds:   blockStart,
				Content:   strings.TrimSpace(m[2]),
				SlideNum:  currentSlide,
			}
			t.Utterances = append(t.Utterances, u)
			t.AddParticipant(u.Speaker)
			continue
		}
		if t.Title == "" {
			t.Title = trimmed
		}
	}

	if total := t.TotalSeconds(); total > 0 {
		t.Duration = fmt.Sprintf("%d분 %d초", total/60, total%60)
	}

	p.logger.Info(fmt.Sprintf("Parsed %d utterances (page block format)", len(t.Utterances)))
	return t, nil
}

// Merge concatenates transcript parts in order. Each later part is shifted
// by the last timestamp merged so far, the declared duration of a part is
// not trusted for offsets. Title, date and duration come from the first
// part that has them, participants keep first-seen order across parts.
func (p *sttParser) Merge(parts []*transcripts.Transcript) *transcripts.Transcript {
	merged := &transcripts.Transcript{}
	for i, part := range parts {
		if part == nil {
			continue
		}
		if merged.Title == "" {
			merged.Title = part.Title
		}
		if merged.Date == "" {
			merged.Date = part.Date
		}
		if merged.Duration == "" {
			merged.Duration = part.Duration
		}
		offset := 0
		if i > 0 {
			offset = merged.TotalSeconds()
		}
		for _, u := range part.Utterances {
			shifted := *u
			if offset > 0 {
				shifted.Seconds = u.Seconds + offset
				shifted.Timestamp = transcripts.FormatTimestamp(shifted.Seconds)
			}
			merged.Utterances = append(merged.Utterances, &shifted)
		}
		for _, speaker := range part.Participants {
			merged.AddParticipant(speaker)
		}
	}
	return merged
}

// ExtractSlideHint returns the slide number named in the text, or zero.
func ExtractSlideHint(content string) int {
	for _, pattern := range slideHintPatterns {
		if m := pattern.FindStringSubmatch(content); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}
