package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/infrastructure/render"
	"lecture_note_service/internal/infrastructure/workspace"
	"lecture_note_service/internal/pkg/config"
	"lecture_note_service/internal/pkg/logger"
)

// publishService implements the PublishService interface copying rendered
// notes into the static site directory
type publishService struct {
	store       artifacts.Store
	lectureRepo lectures.LectureRepository
	settings    *config.PipelineSettings
	logger      logger.Logger
}

// NewPublishService creates a new instance of PublishService
func NewPublishService(
	store artifacts.Store,
	lectureRepo lectures.LectureRepository,
	settings *config.PipelineSettings,
	logger logger.Logger,
) (lectures.PublishService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &publishService{
		store:       store,
		lectureRepo: lectureRepo,
		settings:    settings,
		logger:      logger,
	}, nil
}

func (s *publishService) Publish(ctx context.Context) (int, error) {
	lectureNames, err := s.store.ListOutputs()
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(s.settings.SiteDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create site directory %s: %w", s.settings.SiteDir, err)
	}

	var entries []render.IndexEntry
	published := 0
	for _, name := range lectureNames {
		if err := ctx.Err(); err != nil {
			return published, err
		}
		htmlFile := s.findHTMLFile(name)
		if htmlFile == "" {
			continue
		}
		if err := s.copyLecture(name, htmlFile); err != nil {
			return published, err
		}

		// Unconventional folder names still get listed, the index sorts
		// them after the numbered lectures.
		info := lectures.ParseLectureName(name)
		entries = append(entries, render.IndexEntry{
			Number:   info.Number,
			Speaker:  info.Speaker,
			Topic:    info.Topic,
			Date:     info.DottedDate(),
			Folder:   name,
			HTMLFile: htmlFile,
		})
		s.markPublished(ctx, name)
		published++
	}

	index, err := render.BuildIndex(s.settings.SiteTitle, entries, time.Now())
	if err != nil {
		return published, err
	}
	indexPath := filepath.Join(s.settings.SiteDir, "index.html")
	if err := os.WriteFile(indexPath, index, 0o644); err != nil {
		return published, fmt.Errorf("failed to write %s: %w", indexPath, err)
	}

	s.logger.Info("Published ", published, " lectures to ", s.settings.SiteDir)
	return published, nil
}

func (s *publishService) findHTMLFile(lectureName string) string {
	files, err := s.store.ListFiles(lectureName, "")
	if err != nil {
		return ""
	}
	for _, name := range files {
		if strings.HasSuffix(name, ".html") {
			return name
		}
	}
	return ""
}

// copyLecture mirrors the lecture's HTML note and slide images into the
// site directory, replacing any previous copy.
func (s *publishService) copyLecture(lectureName, htmlFile string) error {
	destDir := filepath.Join(s.settings.SiteDir, lectureName)
	if err := os.RemoveAll(destDir); err != nil {
		return fmt.Errorf("failed to clear %s: %w", destDir, err)
	}
	if err := os.MkdirAll(filepath.Join(destDir, workspace.SlidesDirName), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	html, err := s.store.ReadFile(lectureName, htmlFile)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(destDir, htmlFile), html, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", htmlFile, err)
	}

	slideFiles, err := s.store.ListFiles(lectureName, workspace.SlidesDirName)
	if err != nil {
		return err
	}
	for _, name := range slideFiles {
		data, err := s.store.ReadFile(lectureName, filepath.Join(workspace.SlidesDirName, name))
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, workspace.SlidesDirName, name)
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
	}
	return nil
}

func (s *publishService) markPublished(ctx context.Context, lectureName string) {
	meta, err := s.lectureRepo.GetByName(ctx, lectureName)
	if err != nil {
		return
	}
	meta.Status = lectures.StatusPublished
	meta.DateTimeUpdated = time.Now()
	if err := s.lectureRepo.UpdateByID(ctx, meta); err != nil {
		s.logger.Warn("Failed to mark ", lectureName, " published: ", err)
	}
}
