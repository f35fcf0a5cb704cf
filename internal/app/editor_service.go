package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/summaries"
	"lecture_note_service/internal/infrastructure/workspace"
	"lecture_note_service/internal/pkg/logger"
)

// editorService implements the EditorService interface exposing the stored
// summary for interactive editing
type editorService struct {
	store  artifacts.Store
	logger logger.Logger
}

// NewEditorService creates a new instance of EditorService
func NewEditorService(store artifacts.Store, logger logger.Logger) (summaries.EditorService, error) {
	return &editorService{store: store, logger: logger}, nil
}

func (s *editorService) GetSummary(ctx context.Context, lectureName string) (*summaries.LectureSummary, error) {
	var summary summaries.LectureSummary
	if err := s.store.LoadJSON(lectureName, artifacts.SummaryFile, &summary); err != nil {
		return nil, fmt.Errorf("lecture %s has no summary: %w", lectureName, err)
	}
	return &summary, nil
}

func (s *editorService) UpdateSlideKeyPoints(ctx context.Context, lectureName string, slideNum int, keyPoints []string) (*summaries.SlideSummary, error) {
	summary, err := s.GetSummary(ctx, lectureName)
	if err != nil {
		return nil, err
	}
	slide := summary.FindSlide(slideNum)
	if slide == nil {
		return nil, fmt.Errorf("slide %d not found in summary of %s", slideNum, lectureName)
	}

	slide.KeyPoints = dropEmpty(keyPoints)
	if err := s.save(lectureName, summary); err != nil {
		return nil, err
	}
	s.logger.Info("Updated key points of slide ", slideNum, " in ", lectureName)
	return slide, nil
}

func (s *editorService) UpdateQA(ctx context.Context, lectureName string, items []*summaries.QAItem) error {
	summary, err := s.GetSummary(ctx, lectureName)
	if err != nil {
		return err
	}

	kept := make([]*summaries.QAItem, 0, len(items))
	for _, item := range items {
		if item == nil || strings.TrimSpace(item.Question) == "" {
			continue
		}
		kept = append(kept, item)
	}
	summary.QASection = kept

	if err := s.save(lectureName, summary); err != nil {
		return err
	}
	s.logger.Info("Updated Q&A section of ", lectureName, " (", len(kept), " items)")
	return nil
}

func (s *editorService) UpdateTakeaways(ctx context.Context, lectureName string, takeaways []string) error {
	summary, err := s.GetSummary(ctx, lectureName)
	if err != nil {
		return err
	}
	summary.KeyTakeaways = dropEmpty(takeaways)

	if err := s.save(lectureName, summary); err != nil {
		return err
	}
	s.logger.Info("Updated takeaways of ", lectureName, " (", len(summary.KeyTakeaways), " items)")
	return nil
}

func (s *editorService) SlideImage(ctx context.Context, lectureName string, slideNum int) ([]byte, error) {
	name := fmt.Sprintf("slide_%03d.png", slideNum)
	data, err := s.store.ReadFile(lectureName, filepath.Join(workspace.SlidesDirName, name))
	if err != nil {
		return nil, fmt.Errorf("slide image %d of %s not found: %w", slideNum, lectureName, err)
	}
	return data, nil
}

func (s *editorService) save(lectureName string, summary *summaries.LectureSummary) error {
	_, err := s.store.SaveJSON(lectureName, artifacts.SummaryFile, summary)
	return err
}

// dropEmpty removes blank strings, clearing a field is how the editor
// deletes an entry.
func dropEmpty(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	return kept
}
