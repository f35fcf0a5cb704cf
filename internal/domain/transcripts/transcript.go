// Package transcripts holds the speech-to-text transcript entities and the
// parsing contracts around them.
package transcripts

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Utterance is one speaker turn in a transcript. JSON field names are the
// on-disk stt_parsed.json format. SlideNum is set when the speaker named a
// slide explicitly ("p.5", "5페이지") and is zero otherwise.
type Utterance struct {
	Speaker   string `json:"speaker"`
	Timestamp string `json:"timestamp"`
	Seconds   int    `json:"seconds"`
	Content   string `json:"content"`
	SlideNum  int    `json:"slide_num,omitempty"`
}

// Transcript is a parsed STT file, or several merged in recording order.
// Title is the first line of the export, Participants lists the speakers
// in order of first appearance.
type Transcript struct {
	Title        string       `json:"title"`
	Date         string       `json:"date"`
	Duration     string       `json:"duration"`
	Participants []string     `json:"participants"`
	Utterances   []*Utterance `json:"utterances"`
}

// AddParticipant records a speaker, keeping first-seen order.
func (t *Transcript) AddParticipant(speaker string) {
	for _, p := range t.Participants {
		if p == speaker {
			return
		}
	}
	t.Participants = append(t.Participants, speaker)
}

// TotalSeconds returns the timestamp of the last utterance, the effective
// length of the recording as far as matching is concerned.
func (t *Transcript) TotalSeconds() int {
	if len(t.Utterances) == 0 {
		return 0
	}
	max := 0
	for _, u := range t.Utterances {
		if u.Seconds > max {
			max = u.Seconds
		}
	}
	return max
}

// MainSpeaker returns the speaker with the most utterances.
func (t *Transcript) MainSpeaker() string {
	counts := map[string]int{}
	for _, u := range t.Utterances {
		counts[u.Speaker]++
	}
	best, bestCount := "", 0
	for s, c := range counts {
		if c > bestCount {
			best, bestCount = s, c
		}
	}
	return best
}

var timestampPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// ParseTimestamp converts "MM:SS" or "HH:MM:SS" into seconds.
func ParseTimestamp(ts string) (int, error) {
	m := timestampPattern.FindStringSubmatch(strings.TrimSpace(ts))
	if m == nil {
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	if m[3] != "" {
		c, _ := strconv.Atoi(m[3])
		return a*3600 + b*60 + c, nil
	}
	return a*60 + b, nil
}

// FormatTimestamp renders seconds as "M:SS". Minutes keep counting past an
// hour ("94:03"), which is what ParseTimestamp reads back for two parts.
func FormatTimestamp(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

var koreanDurationPattern = regexp.MustCompile(`(?:(\d+)\s*시간)?\s*(?:(\d+)\s*분)?\s*(?:(\d+)\s*초)?`)

// ParseKoreanDuration converts strings like "94분 3초" or "1시간 30분" into
// seconds. It returns 0 when nothing matches.
func ParseKoreanDuration(s string) int {
	m := koreanDurationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	total := 0
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		total += h * 3600
	}
	if m[2] != "" {
		min, _ := strconv.Atoi(m[2])
		total += min * 60
	}
	if m[3] != "" {
		sec, _ := strconv.Atoi(m[3])
		total += sec
	}
	return total
}
