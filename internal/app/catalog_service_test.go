//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLectureRepo keeps catalog entries in memory.
type stubLectureRepo struct {
	byName map[string]*lectures.LectureMeta
}

func newStubLectureRepo() *stubLectureRepo {
	return &stubLectureRepo{byName: map[string]*lectures.LectureMeta{}}
}

func (r *stubLectureRepo) Create(_ context.Context, m *lectures.LectureMeta) error {
	r.byName[m.Name] = m
	return nil
}

func (r *stubLectureRepo) List(_ context.Context, _ *lectures.LectureMetaQuery) ([]*lectures.LectureMeta, error) {
	var out []*lectures.LectureMeta
	for _, m := range r.byName {
		out = append(out, m)
	}
	return out, nil
}

func (r *stubLectureRepo) GetByID(_ context.Context, id string) (*lectures.LectureMeta, error) {
	for _, m := range r.byName {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("lecture %s not found", id)
}

func (r *stubLectureRepo) GetByName(_ context.Context, name string) (*lectures.LectureMeta, error) {
	if m, ok := r.byName[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("lecture %s not found", name)
}

func (r *stubLectureRepo) UpdateByID(_ context.Context, m *lectures.LectureMeta) error {
	r.byName[m.Name] = m
	return nil
}

func (r *stubLectureRepo) DeleteByID(_ context.Context, id string) error {
	for name, m := range r.byName {
		if m.ID == id {
			delete(r.byName, name)
		}
	}
	return nil
}

func TestCatalogService_MarkFailed(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	repo := newStubLectureRepo()
	require.NoError(t, repo.Create(context.Background(), &lectures.LectureMeta{
		ID:              "b7f9d1f2-1111-2222-3333-444455556666",
		Name:            "12-이헌준-Computing System for AI-260206",
		Status:          lectures.StatusProcessing,
		DateTimeCreated: time.Now().Add(-time.Hour),
	}))

	service, err := NewCatalogService(nil, repo, &stubArtifactRepo{}, log)
	require.NoError(t, err)

	require.NoError(t, service.MarkFailed(context.Background(), "12-이헌준-Computing System for AI-260206"))

	meta, err := repo.GetByName(context.Background(), "12-이헌준-Computing System for AI-260206")
	require.NoError(t, err)
	assert.Equal(t, lectures.StatusFailed, meta.Status)
}

func TestCatalogService_MarkFailed_UnknownLecture_Error(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	service, err := NewCatalogService(nil, newStubLectureRepo(), &stubArtifactRepo{}, log)
	require.NoError(t, err)

	assert.Error(t, service.MarkFailed(context.Background(), "99-없는강의-없음-000000"))
}
