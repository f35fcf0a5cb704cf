package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/pkg/logger"
)

type folderScanner struct {
	dataDir string
	logger  logger.Logger
}

// NewFolderScanner creates a scanner over the lecture data directory.
// When dataDir itself is missing, a sibling directory with a trailing
// colon in its name is tried before giving up. Cloud sync tools create
// that variant on some platforms.
func NewFolderScanner(dataDir string, logger logger.Logger) (lectures.Scanner, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory must not be empty")
	}
	resolved := resolveDataDir(dataDir)
	return &folderScanner{dataDir: resolved, logger: logger}, nil
}

func resolveDataDir(dataDir string) string {
	withColon := dataDir + ":"
	if info, err := os.Stat(withColon); err == nil && info.IsDir() {
		return withColon
	}
	return dataDir
}

func (s *folderScanner) Scan(ctx context.Context) ([]*lectures.LectureSource, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", s.dataDir, err)
	}

	var sources []*lectures.LectureSource
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		src, err := s.Resolve(ctx, e.Name())
		if err != nil {
			s.logger.Warn(fmt.Sprintf("Skipping folder %s: %v", e.Name(), err))
			continue
		}
		sources = append(sources, src)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name })
	s.logger.Info(fmt.Sprintf("Scanned %d lecture folders in %s", len(sources), s.dataDir))
	return sources, nil
}

func (s *folderScanner) Resolve(ctx context.Context, name string) (*lectures.LectureSource, error) {
	path := filepath.Join(s.dataDir, name)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("lecture folder %s not found: %w", name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lecture folder %s: %w", path, err)
	}

	src := &lectures.LectureSource{Path: path, Name: name}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".pdf":
			src.PDFFiles = append(src.PDFFiles, filepath.Join(path, e.Name()))
		case ".txt":
			src.TranscriptFiles = append(src.TranscriptFiles, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(src.PDFFiles)
	sort.Strings(src.TranscriptFiles)
	return src, nil
}
