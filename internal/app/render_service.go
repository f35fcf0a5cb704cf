package app

import (
	"context"
	"fmt"
	"time"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/summaries"
	"lecture_note_service/internal/infrastructure/render"
	"lecture_note_service/internal/infrastructure/workspace"
	"lecture_note_service/internal/pkg/logger"
)

// renderService implements the RenderService interface producing the note
// documents from the stored summary
type renderService struct {
	store        artifacts.Store
	lectureRepo  lectures.LectureRepository
	artifactRepo artifacts.ArtifactRepository
	logger       logger.Logger
}

// NewRenderService creates a new instance of RenderService
func NewRenderService(
	store artifacts.Store,
	lectureRepo lectures.LectureRepository,
	artifactRepo artifacts.ArtifactRepository,
	logger logger.Logger,
) (lectures.RenderService, error) {
	return &renderService{
		store:        store,
		lectureRepo:  lectureRepo,
		artifactRepo: artifactRepo,
		logger:       logger,
	}, nil
}

func (s *renderService) Render(ctx context.Context, lectureName string) (string, string, error) {
	var summary summaries.LectureSummary
	if err := s.store.LoadJSON(lectureName, artifacts.SummaryFile, &summary); err != nil {
		return "", "", fmt.Errorf("lecture %s has no summary, run summarize first: %w", lectureName, err)
	}

	info := lectures.ParseLectureName(lectureName)
	images, err := s.slideImages(lectureName)
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	baseName := render.NoteBaseName(info)

	markdown := render.BuildMarkdown(info, &summary, images, now)
	markdownPath, err := s.store.WriteFile(lectureName, baseName+".md", []byte(markdown))
	if err != nil {
		return "", "", err
	}
	if err := s.artifactRepo.Upsert(ctx, artifacts.NewArtifactMeta(lectureName, artifacts.KindMarkdown, markdownPath)); err != nil {
		return "", "", err
	}

	html, err := render.BuildHTML(info, &summary, images, now)
	if err != nil {
		return "", "", err
	}
	htmlPath, err := s.store.WriteFile(lectureName, baseName+".html", html)
	if err != nil {
		return "", "", err
	}
	if err := s.artifactRepo.Upsert(ctx, artifacts.NewArtifactMeta(lectureName, artifacts.KindHTML, htmlPath)); err != nil {
		return "", "", err
	}

	if err := s.markProcessed(ctx, lectureName); err != nil {
		return "", "", err
	}

	s.logger.Info("Rendered notes for ", lectureName)
	return markdownPath, htmlPath, nil
}

// slideImages maps slide numbers to image paths relative to the note file.
func (s *renderService) slideImages(lectureName string) (map[int]string, error) {
	files, err := s.store.ListFiles(lectureName, workspace.SlidesDirName)
	if err != nil {
		return nil, err
	}
	images := make(map[int]string, len(files))
	for _, name := range files {
		var pageNum int
		// A jpg variant wins over the png of the same page
		if _, err := fmt.Sscanf(name, "slide_%d.jpg", &pageNum); err == nil {
			images[pageNum] = workspace.SlidesDirName + "/" + name
			continue
		}
		if _, err := fmt.Sscanf(name, "slide_%d.png", &pageNum); err == nil {
			if _, ok := images[pageNum]; !ok {
				images[pageNum] = workspace.SlidesDirName + "/" + name
			}
		}
	}
	return images, nil
}

func (s *renderService) markProcessed(ctx context.Context, lectureName string) error {
	meta, err := s.lectureRepo.GetByName(ctx, lectureName)
	if err != nil {
		// The lecture may not be cataloged when rendering standalone output
		return nil
	}
	meta.Status = lectures.StatusProcessed
	meta.DateTimeUpdated = time.Now()
	return s.lectureRepo.UpdateByID(ctx, meta)
}
