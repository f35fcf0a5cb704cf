package artifacts

import "context"

// Store reads and writes pipeline artifacts under a lecture's output
// directory on the local filesystem.
type Store interface {
	// LectureDir returns the output directory for the named lecture,
	// creating it when missing.
	LectureDir(lectureName string) (string, error)
	// SlidesDir returns the slide image directory for the named lecture,
	// creating it when missing.
	SlidesDir(lectureName string) (string, error)
	// SaveJSON marshals v with indentation into the named artifact file.
	SaveJSON(lectureName, fileName string, v interface{}) (string, error)
	// LoadJSON unmarshals the named artifact file into v.
	LoadJSON(lectureName, fileName string, v interface{}) error
	// WriteFile writes raw content into the lecture's output directory.
	WriteFile(lectureName, fileName string, content []byte) (string, error)
	// ReadFile reads a file from the lecture's output directory.
	ReadFile(lectureName, fileName string) ([]byte, error)
	// ListOutputs returns the names of lectures that have an output
	// directory.
	ListOutputs() ([]string, error)
	// ListFiles returns the file names in a lecture subdirectory.
	// Pass "" for the lecture directory itself.
	ListFiles(lectureName, subDir string) ([]string, error)
}

// ArtifactRepository tracks produced artifacts in the catalog database.
type ArtifactRepository interface {
	// Upsert records an artifact, replacing a previous entry of the same
	// kind for the lecture.
	Upsert(ctx context.Context, meta *ArtifactMeta) error
	// ListByLecture lists recorded artifacts for a lecture.
	ListByLecture(ctx context.Context, lectureName string) ([]*ArtifactMeta, error)
	// DeleteByLecture drops all artifact entries of a lecture.
	DeleteByLecture(ctx context.Context, lectureName string) error
}
