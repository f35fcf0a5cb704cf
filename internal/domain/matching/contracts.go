package matching

import (
	"context"

	"lecture_note_service/internal/domain/slides"
	"lecture_note_service/internal/domain/transcripts"
)

// Matcher aligns transcript utterances with slides.
type Matcher interface {
	// Match groups the utterances under the slides they were spoken
	// over, one entry per slide in page order. With a language model
	// available it matches chunk by chunk over a sliding slide window;
	// otherwise it falls back to time-proportional assignment. Explicit
	// page hints in the transcript always win.
	Match(ctx context.Context, transcript *transcripts.Transcript, slideList []*slides.SlideMeta) ([]*SlideMatch, error)
}

// MatchService runs the matcher over a lecture's stored artifacts.
type MatchService interface {
	// MatchLecture loads the parsed transcript and slide info, aligns
	// them and writes slide_matches.json.
	MatchLecture(ctx context.Context, lectureName string) ([]*SlideMatch, error)
}
