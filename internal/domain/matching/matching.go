// Package matching holds the slide-to-transcript alignment entities and the
// chunking logic the matcher runs on.
package matching

import (
	"lecture_note_service/internal/domain/transcripts"
)

// Tunables for the sliding-window matcher.
const (
	DefaultLectureMinutes = 150
	ChunkMinutes          = 10
	WindowMultiplier      = 3
	OverlapBack           = 2
	MinWindowSize         = 10
)

// Confidence levels reported per matched slide.
const (
	ConfidenceHigh    = "high"
	ConfidenceMedium  = "medium"
	ConfidenceLow     = "low"
	ConfidenceUnknown = "unknown"
)

// SlideMatch collects the utterances assigned to one slide. JSON field
// names are the on-disk slide_matches.json format.
type SlideMatch struct {
	SlideNum       int                      `json:"slide_num"`
	UtteranceCount int                      `json:"utterance_count"`
	Confidence     string                   `json:"confidence"`
	LLMVerified    bool                     `json:"llm_verified"`
	Notes          string                   `json:"notes"`
	Utterances     []*transcripts.Utterance `json:"utterances"`

	// SlideText carries the slide's text preview through matching, it is
	// not persisted.
	SlideText string `json:"-"`
}

// Recount refreshes the persisted utterance count.
func (m *SlideMatch) Recount() {
	m.UtteranceCount = len(m.Utterances)
}

// Chunk is a contiguous run of utterances inside one fixed time window of
// the recording.
type Chunk struct {
	StartIdx  int
	EndIdx    int // exclusive
	StartSecs int
	EndSecs   int
}

// SplitIntoChunks buckets the transcript into fixed windows of
// chunkMinutes counted from the start of the recording. Windows without
// utterances are omitted.
func SplitIntoChunks(t *transcripts.Transcript, chunkMinutes int) []Chunk {
	if chunkMinutes <= 0 {
		chunkMinutes = ChunkMinutes
	}
	span := chunkMinutes * 60

	var chunks []Chunk
	n := len(t.Utterances)
	for i := 0; i < n; {
		bucket := t.Utterances[i].Seconds / span
		j := i
		for j < n && t.Utterances[j].Seconds/span == bucket {
			j++
		}
		chunks = append(chunks, Chunk{
			StartIdx:  i,
			EndIdx:    j,
			StartSecs: bucket * span,
			EndSecs:   (bucket + 1) * span,
		})
		i = j
	}
	return chunks
}

// WindowSize returns how many candidate slides each chunk is matched
// against. slidesPerChunk is the average slide coverage of one chunk,
// multiplier widens the window beyond it and falls back to
// WindowMultiplier when not positive.
func WindowSize(slidesPerChunk, multiplier int) int {
	if multiplier <= 0 {
		multiplier = WindowMultiplier
	}
	size := slidesPerChunk * multiplier
	if size < MinWindowSize {
		size = MinWindowSize
	}
	return size
}
