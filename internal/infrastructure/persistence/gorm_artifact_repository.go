package persistence

import (
	"context"
	"errors"
	"fmt"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/infrastructure/persistence/models"
	"lecture_note_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormArtifactRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormArtifactRepository creates a new GORM-based ArtifactRepository implementation
func NewGormArtifactRepository(db *gorm.DB, logger logger.Logger) (artifacts.ArtifactRepository, error) {
	return &gormArtifactRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormArtifactRepository) Upsert(ctx context.Context, meta *artifacts.ArtifactMeta) error {
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// One entry per lecture and kind, rewrites replace the previous path
	var existing models.ArtifactModel
	err := r.db.WithContext(ctx).
		Where("lecture_name = ? AND kind = ?", meta.LectureName, meta.Kind).
		First(&existing).Error
	switch {
	case err == nil:
		existing.Path = meta.Path
		existing.DateTimeCreated = meta.DateTimeCreated
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update artifact: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		model := &models.ArtifactModel{}
		model.FromDomain(meta)
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create artifact: %w", err)
		}
	default:
		return fmt.Errorf("failed to fetch artifact: %w", err)
	}

	r.logger.Info("Recorded artifact ", meta.Kind, " for lecture ", meta.LectureName)
	return nil
}

func (r *gormArtifactRepository) ListByLecture(ctx context.Context, lectureName string) ([]*artifacts.ArtifactMeta, error) {
	var modelList []*models.ArtifactModel
	err := r.db.WithContext(ctx).
		Where("lecture_name = ?", lectureName).
		Order("kind asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artifacts: %w", err)
	}

	domainList := make([]*artifacts.ArtifactMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormArtifactRepository) DeleteByLecture(ctx context.Context, lectureName string) error {
	if err := r.db.WithContext(ctx).Where("lecture_name = ?", lectureName).Delete(&models.ArtifactModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete artifacts: %w", err)
	}

	r.logger.Info("Deleted artifact entries for lecture ", lectureName)
	return nil
}
