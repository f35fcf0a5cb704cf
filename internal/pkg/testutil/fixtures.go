package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile creates a test file with the given content.
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// CreateLectureFolder creates a lecture source folder under dataDir populated
// with the named PDF and transcript files (content is placeholder bytes).
func CreateLectureFolder(t *testing.T, dataDir, name string, pdfFiles, txtFiles []string) string {
	t.Helper()

	dir := filepath.Join(dataDir, name)
	require.NoError(t, os.MkdirAll(dir, 0750))

	for _, f := range pdfFiles {
		require.NoError(t, CreateTestFile(filepath.Join(dir, f), []byte("%PDF-1.4")))
	}
	for _, f := range txtFiles {
		require.NoError(t, CreateTestFile(filepath.Join(dir, f), []byte("placeholder transcript")))
	}

	return dir
}

// ClovaTranscript returns a small transcript fixture in Clova note format.
func ClovaTranscript() string {
	return `참석자 회의록
2026.02.06 금요일 오후 2:00 ・ 94분 3초

이헌준 0:05
수업을 시작하겠습니다. 오늘은 컴퓨팅 시스템을 다룹니다.

이헌준 1:12 p.2
먼저 폰노이만 구조부터 보겠습니다.

학생A 2:30
질문 있습니다. 캐시는 어디에 있나요?

이헌준 2:45
좋은 질문입니다. 캐시는 CPU 안에 있습니다.
`
}

// PageBlockTranscript returns a small transcript fixture in page-block format.
func PageBlockTranscript() string {
	return `컴퓨팅 시스템 강의
[Page 1-2: Intro & Overview]
(00:00 ~ 03:03)
이헌준: 수업을 시작하겠습니다.
이헌준: 오늘 다룰 내용을 소개합니다.
[Page 3: Von Neumann]
(03:03 ~ 07:30)
이헌준: 폰노이만 구조를 살펴봅시다.
`
}
