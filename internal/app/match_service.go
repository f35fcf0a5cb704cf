package app

import (
	"context"
	"fmt"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/matching"
	"lecture_note_service/internal/domain/slides"
	"lecture_note_service/internal/domain/transcripts"
	"lecture_note_service/internal/pkg/logger"
)

// matchService implements the MatchService interface running the matcher
// over stored artifacts
type matchService struct {
	matcher      matching.Matcher
	store        artifacts.Store
	artifactRepo artifacts.ArtifactRepository
	logger       logger.Logger
}

// NewMatchService creates a new instance of MatchService
func NewMatchService(
	matcher matching.Matcher,
	store artifacts.Store,
	artifactRepo artifacts.ArtifactRepository,
	logger logger.Logger,
) (matching.MatchService, error) {
	return &matchService{
		matcher:      matcher,
		store:        store,
		artifactRepo: artifactRepo,
		logger:       logger,
	}, nil
}

func (s *matchService) MatchLecture(ctx context.Context, lectureName string) ([]*matching.SlideMatch, error) {
	var transcript transcripts.Transcript
	if err := s.store.LoadJSON(lectureName, artifacts.ParsedSTTFile, &transcript); err != nil {
		return nil, fmt.Errorf("lecture %s has no parsed transcript, run ingest first: %w", lectureName, err)
	}
	var slideList []*slides.SlideMeta
	if err := s.store.LoadJSON(lectureName, artifacts.SlidesInfoFile, &slideList); err != nil {
		return nil, fmt.Errorf("lecture %s has no slide info, run ingest first: %w", lectureName, err)
	}

	matches, err := s.matcher.Match(ctx, &transcript, slideList)
	if err != nil {
		return nil, fmt.Errorf("failed to match lecture %s: %w", lectureName, err)
	}

	path, err := s.store.SaveJSON(lectureName, artifacts.SlideMatchesFile, matches)
	if err != nil {
		return nil, err
	}
	if err := s.artifactRepo.Upsert(ctx, artifacts.NewArtifactMeta(lectureName, artifacts.KindSlideMatches, path)); err != nil {
		return nil, err
	}

	s.logger.Info("Saved slide matches for ", lectureName)
	return matches, nil
}
