package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/slides"
	"lecture_note_service/internal/domain/summaries"
	"lecture_note_service/internal/domain/transcripts"
	"lecture_note_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// ingestService implements the IngestService interface turning lecture
// inputs into the slides_info, stt_parsed and metadata artifacts
type ingestService struct {
	pdfProcessor slides.PDFProcessor
	parser       transcripts.Parser
	store        artifacts.Store
	lectureRepo  lectures.LectureRepository
	artifactRepo artifacts.ArtifactRepository
	logger       logger.Logger
}

// NewIngestService creates a new instance of IngestService
func NewIngestService(
	pdfProcessor slides.PDFProcessor,
	parser transcripts.Parser,
	store artifacts.Store,
	lectureRepo lectures.LectureRepository,
	artifactRepo artifacts.ArtifactRepository,
	logger logger.Logger,
) (lectures.IngestService, error) {
	return &ingestService{
		pdfProcessor: pdfProcessor,
		parser:       parser,
		store:        store,
		lectureRepo:  lectureRepo,
		artifactRepo: artifactRepo,
		logger:       logger,
	}, nil
}

func (s *ingestService) Ingest(ctx context.Context, source *lectures.LectureSource) (*lectures.LectureMeta, error) {
	if !source.IsReady() {
		return nil, fmt.Errorf("lecture %s is missing inputs %s", source.Name, source.StatusString())
	}

	slidesDir, err := s.store.SlidesDir(source.Name)
	if err != nil {
		return nil, err
	}

	slideList, err := s.pdfProcessor.Convert(ctx, source.PDFFiles, slidesDir, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to convert PDFs for %s: %w", source.Name, err)
	}

	transcript, err := s.parseTranscripts(source)
	if err != nil {
		return nil, err
	}

	if err := s.saveArtifact(ctx, source.Name, artifacts.SlidesInfoFile, artifacts.KindSlidesInfo, slideList); err != nil {
		return nil, err
	}
	if err := s.saveArtifact(ctx, source.Name, artifacts.ParsedSTTFile, artifacts.KindParsedSTT, transcript); err != nil {
		return nil, err
	}

	metadata := summaries.Metadata{
		LectureName: source.Name,
		STTDuration: transcript.Duration,
		TotalSlides: len(slideList),
		PDFFiles:    baseNames(source.PDFFiles),
		TXTFiles:    baseNames(source.TranscriptFiles),
		MainSpeaker: transcript.MainSpeaker(),
	}
	if err := s.saveArtifact(ctx, source.Name, artifacts.MetadataFile, artifacts.KindMetadata, metadata); err != nil {
		return nil, err
	}

	meta, err := s.upsertCatalogEntry(ctx, source.Name, len(slideList), transcript.Duration)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Ingested lecture ", source.Name, ": ", len(slideList), " slides, ", len(transcript.Utterances), " utterances")
	return meta, nil
}

func (s *ingestService) parseTranscripts(source *lectures.LectureSource) (*transcripts.Transcript, error) {
	var parts []*transcripts.Transcript
	for _, txtPath := range source.TranscriptFiles {
		raw, err := os.ReadFile(txtPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read transcript %s: %w", txtPath, err)
		}
		part, err := s.parser.Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse transcript %s: %w", txtPath, err)
		}
		parts = append(parts, part)
	}
	return s.parser.Merge(parts), nil
}

func (s *ingestService) saveArtifact(ctx context.Context, lectureName, fileName, kind string, v interface{}) error {
	path, err := s.store.SaveJSON(lectureName, fileName, v)
	if err != nil {
		return err
	}
	return s.artifactRepo.Upsert(ctx, artifacts.NewArtifactMeta(lectureName, kind, path))
}

func (s *ingestService) upsertCatalogEntry(ctx context.Context, name string, slideCount int, duration string) (*lectures.LectureMeta, error) {
	meta, err := s.lectureRepo.GetByName(ctx, name)
	if err != nil {
		info := lectures.ParseLectureName(name)
		meta = &lectures.LectureMeta{
			ID:              uuid.New().String(),
			DateTimeCreated: time.Now(),
			Name:            name,
			Speaker:         info.Speaker,
			Topic:           info.Topic,
			Date:            info.DottedDate(),
		}
		meta.DateTimeUpdated = meta.DateTimeCreated
		meta.SlideCount = slideCount
		meta.TranscriptDuration = duration
		meta.Status = lectures.StatusProcessing
		if err := s.lectureRepo.Create(ctx, meta); err != nil {
			return nil, err
		}
		return meta, nil
	}

	meta.SlideCount = slideCount
	meta.TranscriptDuration = duration
	meta.Status = lectures.StatusProcessing
	meta.DateTimeUpdated = time.Now()
	if err := s.lectureRepo.UpdateByID(ctx, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
