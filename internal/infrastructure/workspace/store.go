// Package workspace implements the artifact store on the local filesystem.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/pkg/logger"
)

// SlidesDirName is the per-lecture subdirectory holding slide images.
const SlidesDirName = "slides"

type fileStore struct {
	outputDir string
	logger    logger.Logger
}

// NewFileStore creates an artifact store rooted at outputDir.
func NewFileStore(outputDir string, logger logger.Logger) (artifacts.Store, error) {
	if outputDir == "" {
		return nil, fmt.Errorf("output directory must not be empty")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	return &fileStore{outputDir: outputDir, logger: logger}, nil
}

func (s *fileStore) LectureDir(lectureName string) (string, error) {
	dir := filepath.Join(s.outputDir, lectureName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create lecture directory %s: %w", dir, err)
	}
	return dir, nil
}

func (s *fileStore) SlidesDir(lectureName string) (string, error) {
	dir := filepath.Join(s.outputDir, lectureName, SlidesDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create slides directory %s: %w", dir, err)
	}
	return dir, nil
}

func (s *fileStore) SaveJSON(lectureName, fileName string, v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", fileName, err)
	}
	return s.WriteFile(lectureName, fileName, data)
}

func (s *fileStore) LoadJSON(lectureName, fileName string, v interface{}) error {
	data, err := s.ReadFile(lectureName, fileName)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", fileName, err)
	}
	return nil
}

func (s *fileStore) WriteFile(lectureName, fileName string, content []byte) (string, error) {
	dir, err := s.LectureDir(lectureName)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.logger.Info(fmt.Sprintf("Wrote artifact %s", path))
	return path, nil
}

func (s *fileStore) ReadFile(lectureName, fileName string) ([]byte, error) {
	path := filepath.Join(s.outputDir, lectureName, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (s *fileStore) ListFiles(lectureName, subDir string) ([]string, error) {
	dir := filepath.Join(s.outputDir, lectureName, subDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *fileStore) ListOutputs() ([]string, error) {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory %s: %w", s.outputDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
