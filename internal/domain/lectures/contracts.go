package lectures

import "context"

// Scanner discovers lecture source folders in the data directory.
type Scanner interface {
	// Scan lists lecture folders sorted by name, skipping hidden entries.
	Scan(ctx context.Context) ([]*LectureSource, error)

	// Resolve returns the source folder for a single lecture by name.
	Resolve(ctx context.Context, name string) (*LectureSource, error)
}

// CatalogService maintains the lecture catalog backed by the repository.
type CatalogService interface {
	// Refresh rescans the data directory and upserts catalog entries.
	// It returns the catalog state after the scan.
	Refresh(ctx context.Context) ([]*LectureMeta, error)

	// List retrieves catalog entries considering a query filter.
	List(ctx context.Context, query *LectureMetaQuery) ([]*LectureMeta, error)

	// GetByID retrieves a catalog entry by ID.
	GetByID(ctx context.Context, lectureID string) (*LectureMeta, error)

	// GetByName retrieves a catalog entry by lecture folder name.
	GetByName(ctx context.Context, name string) (*LectureMeta, error)

	// DeleteByID removes a catalog entry and its artifact index.
	DeleteByID(ctx context.Context, lectureID string) error

	// MarkFailed flags a lecture whose pipeline run errored.
	MarkFailed(ctx context.Context, name string) error
}

// IngestService converts lecture inputs into normalized artifacts:
// slide images with per-page text and a merged transcript.
type IngestService interface {
	// Ingest processes the PDFs and transcripts of a source folder and
	// writes the slides_info, stt_parsed and metadata artifacts.
	Ingest(ctx context.Context, source *LectureSource) (*LectureMeta, error)
}

// RenderService produces the markdown and HTML notes for a lecture.
type RenderService interface {
	// Render writes the note documents and returns their paths.
	Render(ctx context.Context, lectureName string) (markdownPath, htmlPath string, err error)
}

// PublishService copies rendered notes into the static site directory
// and regenerates the index page.
type PublishService interface {
	// Publish returns the number of lectures copied into the site.
	Publish(ctx context.Context) (int, error)
}

// LectureRepository defines the interface for lecture catalog operations
type LectureRepository interface {
	// Create adds a new LectureMeta to the database
	Create(ctx context.Context, lecture *LectureMeta) error
	// List lists LectureMetas in the database with optional filter
	List(ctx context.Context, query *LectureMetaQuery) ([]*LectureMeta, error)
	// GetByID retrieves a LectureMeta from the database by ID
	GetByID(ctx context.Context, lectureID string) (*LectureMeta, error)
	// GetByName retrieves a LectureMeta from the database by folder name
	GetByName(ctx context.Context, name string) (*LectureMeta, error)
	// UpdateByID updates a LectureMeta in the database by ID
	UpdateByID(ctx context.Context, lecture *LectureMeta) error
	// DeleteByID deletes a LectureMeta in the database by ID
	DeleteByID(ctx context.Context, lectureID string) error
}
