package lectures

import "fmt"

// LectureSource describes a lecture folder found in the data directory.
type LectureSource struct {
	Path            string
	Name            string
	PDFFiles        []string
	TranscriptFiles []string
}

// HasPDF reports whether the folder contains at least one slide PDF.
func (s *LectureSource) HasPDF() bool {
	return len(s.PDFFiles) > 0
}

// HasTranscript reports whether the folder contains at least one STT transcript.
func (s *LectureSource) HasTranscript() bool {
	return len(s.TranscriptFiles) > 0
}

// IsReady reports whether the lecture has both inputs required for processing.
func (s *LectureSource) IsReady() bool {
	return s.HasPDF() && s.HasTranscript()
}

// StatusString renders the readiness summary shown in scan listings,
// e.g. "[PDF 2개, TXT 1개]".
func (s *LectureSource) StatusString() string {
	pdfStatus := "PDF 없음"
	if s.HasPDF() {
		pdfStatus = fmt.Sprintf("PDF %d개", len(s.PDFFiles))
	}
	txtStatus := "TXT 없음"
	if s.HasTranscript() {
		txtStatus = fmt.Sprintf("TXT %d개", len(s.TranscriptFiles))
	}
	return fmt.Sprintf("[%s, %s]", pdfStatus, txtStatus)
}
