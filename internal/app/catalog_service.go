// Package app contains the application services wiring the pipeline
// stages to repositories, the artifact store and the language model.
package app

import (
	"context"
	"fmt"
	"time"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// catalogService implements the CatalogService interface backed by the
// folder scanner and the lecture repository
type catalogService struct {
	scanner      lectures.Scanner
	lectureRepo  lectures.LectureRepository
	artifactRepo artifacts.ArtifactRepository
	logger       logger.Logger
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(
	scanner lectures.Scanner,
	lectureRepo lectures.LectureRepository,
	artifactRepo artifacts.ArtifactRepository,
	logger logger.Logger,
) (lectures.CatalogService, error) {
	return &catalogService{
		scanner:      scanner,
		lectureRepo:  lectureRepo,
		artifactRepo: artifactRepo,
		logger:       logger,
	}, nil
}

func (s *catalogService) Refresh(ctx context.Context) ([]*lectures.LectureMeta, error) {
	sources, err := s.scanner.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan data directory: %w", err)
	}

	for _, source := range sources {
		if _, err := s.lectureRepo.GetByName(ctx, source.Name); err == nil {
			continue
		}

		info := lectures.ParseLectureName(source.Name)
		meta := &lectures.LectureMeta{
			ID:              uuid.New().String(),
			DateTimeCreated: time.Now(),
			DateTimeUpdated: time.Now(),
			Name:            source.Name,
			Speaker:         info.Speaker,
			Topic:           info.Topic,
			Date:            info.DottedDate(),
			Status:          lectures.StatusScanned,
		}
		if err := s.lectureRepo.Create(ctx, meta); err != nil {
			return nil, fmt.Errorf("failed to register lecture %s: %w", source.Name, err)
		}
		s.logger.Info("Registered lecture ", source.Name, " ", source.StatusString())
	}

	query := lectures.NewLectureMetaQuery()
	query.Limit = 500
	return s.lectureRepo.List(ctx, query)
}

func (s *catalogService) List(ctx context.Context, query *lectures.LectureMetaQuery) ([]*lectures.LectureMeta, error) {
	return s.lectureRepo.List(ctx, query)
}

func (s *catalogService) GetByID(ctx context.Context, lectureID string) (*lectures.LectureMeta, error) {
	return s.lectureRepo.GetByID(ctx, lectureID)
}

func (s *catalogService) GetByName(ctx context.Context, name string) (*lectures.LectureMeta, error) {
	return s.lectureRepo.GetByName(ctx, name)
}

func (s *catalogService) MarkFailed(ctx context.Context, name string) error {
	meta, err := s.lectureRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	meta.Status = lectures.StatusFailed
	meta.DateTimeUpdated = time.Now()
	if err := s.lectureRepo.UpdateByID(ctx, meta); err != nil {
		return err
	}
	s.logger.Warn("Marked lecture ", name, " failed")
	return nil
}

func (s *catalogService) DeleteByID(ctx context.Context, lectureID string) error {
	meta, err := s.lectureRepo.GetByID(ctx, lectureID)
	if err != nil {
		return err
	}
	if err := s.artifactRepo.DeleteByLecture(ctx, meta.Name); err != nil {
		return err
	}
	return s.lectureRepo.DeleteByID(ctx, lectureID)
}
