//go:build unit
// +build unit

package workspace

import (
	"path/filepath"
	"testing"

	"lecture_note_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeTestLecture = "01-김철수-분산시스템-260206"

func TestFileStore_SaveAndLoadJSON(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store, err := NewFileStore(t.TempDir(), log)
	require.NoError(t, err)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	path, err := store.SaveJSON(storeTestLecture, "metadata.json", &payload{Name: storeTestLecture, Count: 24})
	require.NoError(t, err)
	assert.Equal(t, "metadata.json", filepath.Base(path))

	var loaded payload
	require.NoError(t, store.LoadJSON(storeTestLecture, "metadata.json", &loaded))
	assert.Equal(t, storeTestLecture, loaded.Name)
	assert.Equal(t, 24, loaded.Count)
}

func TestFileStore_LoadJSON_Missing_Error(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store, err := NewFileStore(t.TempDir(), log)
	require.NoError(t, err)

	var out map[string]string
	assert.Error(t, store.LoadJSON(storeTestLecture, "metadata.json", &out))
}

func TestFileStore_WriteAndReadFile(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store, err := NewFileStore(t.TempDir(), log)
	require.NoError(t, err)

	content := []byte("# 강의노트")
	_, err = store.WriteFile(storeTestLecture, "note.md", content)
	require.NoError(t, err)

	data, err := store.ReadFile(storeTestLecture, "note.md")
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFileStore_ListFilesAndOutputs(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store, err := NewFileStore(t.TempDir(), log)
	require.NoError(t, err)

	_, err = store.SlidesDir(storeTestLecture)
	require.NoError(t, err)
	_, err = store.WriteFile(storeTestLecture, filepath.Join(SlidesDirName, "slide_002.png"), []byte{1})
	require.NoError(t, err)
	_, err = store.WriteFile(storeTestLecture, filepath.Join(SlidesDirName, "slide_001.png"), []byte{1})
	require.NoError(t, err)

	files, err := store.ListFiles(storeTestLecture, SlidesDirName)
	require.NoError(t, err)
	assert.Equal(t, []string{"slide_001.png", "slide_002.png"}, files)

	missing, err := store.ListFiles(storeTestLecture, "audio")
	require.NoError(t, err, "a missing subdirectory lists as empty")
	assert.Empty(t, missing)

	outputs, err := store.ListOutputs()
	require.NoError(t, err)
	assert.Equal(t, []string{storeTestLecture}, outputs)
}

func TestNewFileStore_EmptyDir_Error(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	_, err := NewFileStore("", log)
	assert.Error(t, err)
}
