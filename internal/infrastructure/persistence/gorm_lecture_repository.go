package persistence

import (
	"context"
	"errors"
	"fmt"

	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/infrastructure/persistence/models"
	"lecture_note_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormLectureRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLectureRepository creates a new GORM-based LectureRepository implementation
func NewGormLectureRepository(db *gorm.DB, logger logger.Logger) (lectures.LectureRepository, error) {
	return &gormLectureRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLectureRepository) Create(ctx context.Context, lecture *lectures.LectureMeta) error {
	// Validate domain entity (business rules)
	if err := lecture.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LectureModel{}
	model.FromDomain(lecture)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create lecture: %w", err)
	}

	r.logger.Info("Created lecture catalog entry with id ", lecture.ID)
	return nil
}

func (r *gormLectureRepository) List(ctx context.Context, query *lectures.LectureMetaQuery) ([]*lectures.LectureMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.LectureModel
	dbQuery := r.db.WithContext(ctx).Model(&models.LectureModel{})

	// Apply filters
	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.Speaker != "" {
		dbQuery = dbQuery.Where("speaker = ?", query.Speaker)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch lectures: %w", err)
	}

	domainList := make([]*lectures.LectureMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormLectureRepository) GetByID(ctx context.Context, lectureID string) (*lectures.LectureMeta, error) {
	var model models.LectureModel
	if err := r.db.WithContext(ctx).Where("id = ?", lectureID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lecture with ID %s not found", lectureID)
		}
		return nil, fmt.Errorf("failed to fetch lecture: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormLectureRepository) GetByName(ctx context.Context, name string) (*lectures.LectureMeta, error) {
	var model models.LectureModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lecture with name %s not found", name)
		}
		return nil, fmt.Errorf("failed to fetch lecture: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormLectureRepository) UpdateByID(ctx context.Context, lecture *lectures.LectureMeta) error {
	if err := lecture.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LectureModel{}
	model.FromDomain(lecture)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update lecture: %w", err)
	}

	r.logger.Info("Updated lecture catalog entry with id ", lecture.ID)
	return nil
}

func (r *gormLectureRepository) DeleteByID(ctx context.Context, lectureID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", lectureID).Delete(&models.LectureModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete lecture: %w", err)
	}

	r.logger.Info("Deleted lecture catalog entry with id ", lectureID)
	return nil
}
