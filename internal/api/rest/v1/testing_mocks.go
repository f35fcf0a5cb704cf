//go:build unit
// +build unit

package v1

import (
	"context"
	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/summaries"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Refresh(ctx context.Context) ([]*lectures.LectureMeta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lectures.LectureMeta), args.Error(1)
}

func (m *MockCatalogService) List(ctx context.Context, query *lectures.LectureMetaQuery) ([]*lectures.LectureMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lectures.LectureMeta), args.Error(1)
}

func (m *MockCatalogService) GetByID(ctx context.Context, lectureID string) (*lectures.LectureMeta, error) {
	args := m.Called(ctx, lectureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lectures.LectureMeta), args.Error(1)
}

func (m *MockCatalogService) GetByName(ctx context.Context, name string) (*lectures.LectureMeta, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lectures.LectureMeta), args.Error(1)
}

func (m *MockCatalogService) DeleteByID(ctx context.Context, lectureID string) error {
	args := m.Called(ctx, lectureID)
	return args.Error(0)
}

func (m *MockCatalogService) MarkFailed(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockRenderService is a mock implementation of RenderService
type MockRenderService struct {
	mock.Mock
}

func (m *MockRenderService) Render(ctx context.Context, lectureName string) (string, string, error) {
	args := m.Called(ctx, lectureName)
	return args.String(0), args.String(1), args.Error(2)
}

// MockEditorService is a mock implementation of EditorService
type MockEditorService struct {
	mock.Mock
}

func (m *MockEditorService) GetSummary(ctx context.Context, lectureName string) (*summaries.LectureSummary, error) {
	args := m.Called(ctx, lectureName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*summaries.LectureSummary), args.Error(1)
}

func (m *MockEditorService) UpdateSlideKeyPoints(ctx context.Context, lectureName string, slideNum int, keyPoints []string) (*summaries.SlideSummary, error) {
	args := m.Called(ctx, lectureName, slideNum, keyPoints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*summaries.SlideSummary), args.Error(1)
}

func (m *MockEditorService) UpdateQA(ctx context.Context, lectureName string, items []*summaries.QAItem) error {
	args := m.Called(ctx, lectureName, items)
	return args.Error(0)
}

func (m *MockEditorService) UpdateTakeaways(ctx context.Context, lectureName string, takeaways []string) error {
	args := m.Called(ctx, lectureName, takeaways)
	return args.Error(0)
}

func (m *MockEditorService) SlideImage(ctx context.Context, lectureName string, slideNum int) ([]byte, error) {
	args := m.Called(ctx, lectureName, slideNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
