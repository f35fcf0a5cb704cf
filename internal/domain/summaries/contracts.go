package summaries

import "context"

// Summarizer distills matched transcript chunks into per-slide summaries,
// a Q&A section, and lecture-level takeaways.
type Summarizer interface {
	Summarize(ctx context.Context, lectureName string) (*LectureSummary, error)
}

// Refiner moves misplaced key points between adjacent slides after
// summarizing. It rewrites the stored summary and reports what moved.
type Refiner interface {
	Refine(ctx context.Context, lectureName string) ([]*Movement, error)
}

// EditorService exposes the stored summary for interactive editing.
// Edits rewrite lecture_summary.json; rendering picks them up on the
// next run.
type EditorService interface {
	// GetSummary loads the stored summary of a lecture.
	GetSummary(ctx context.Context, lectureName string) (*LectureSummary, error)

	// UpdateSlideKeyPoints replaces the key points of one slide.
	// Empty strings are dropped, the editor deletes points that way.
	UpdateSlideKeyPoints(ctx context.Context, lectureName string, slideNum int, keyPoints []string) (*SlideSummary, error)

	// UpdateQA replaces the Q&A section. Items with an empty question
	// are dropped.
	UpdateQA(ctx context.Context, lectureName string, items []*QAItem) error

	// UpdateTakeaways replaces the takeaway list. Empty strings are
	// dropped.
	UpdateTakeaways(ctx context.Context, lectureName string, takeaways []string) error

	// SlideImage returns the PNG bytes for one slide.
	SlideImage(ctx context.Context, lectureName string, slideNum int) ([]byte, error)
}
