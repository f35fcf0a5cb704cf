package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/llm"
	"lecture_note_service/internal/domain/slides"
	"lecture_note_service/internal/domain/summaries"
	"lecture_note_service/internal/infrastructure/connector"
	"lecture_note_service/internal/pkg/logger"
)

const (
	refineMaxTokens       = 1000
	refineSlideTextLimit  = 1000
	refinePointTextLimit  = 200
	movementLogPointLimit = 50
)

// refineService implements the Refiner interface relocating key points
// that the matcher attached to the wrong slide
type refineService struct {
	model        llm.LanguageModel
	store        artifacts.Store
	artifactRepo artifacts.ArtifactRepository
	logger       logger.Logger
}

// NewRefineService creates a new instance of Refiner
func NewRefineService(
	model llm.LanguageModel,
	store artifacts.Store,
	artifactRepo artifacts.ArtifactRepository,
	logger logger.Logger,
) (summaries.Refiner, error) {
	return &refineService{
		model:        model,
		store:        store,
		artifactRepo: artifactRepo,
		logger:       logger,
	}, nil
}

func (s *refineService) Refine(ctx context.Context, lectureName string) ([]*summaries.Movement, error) {
	if s.model == nil {
		s.logger.Warn("No language model configured, skipping refinement")
		return nil, nil
	}

	var summary summaries.LectureSummary
	if err := s.store.LoadJSON(lectureName, artifacts.SummaryFile, &summary); err != nil {
		return nil, fmt.Errorf("lecture %s has no summary, run summarize first: %w", lectureName, err)
	}
	var slideList []*slides.SlideMeta
	if err := s.store.LoadJSON(lectureName, artifacts.SlidesInfoFile, &slideList); err != nil {
		return nil, fmt.Errorf("lecture %s has no slide info: %w", lectureName, err)
	}
	slideTextByNum := make(map[int]string, len(slideList))
	for _, sl := range slideList {
		slideTextByNum[sl.PageNum] = sl.Text
	}

	numSlides := len(summary.Summaries)
	var movements []*summaries.Movement

	// Review from the last slide backwards so points settle forward
	for slideIdx := numSlides - 1; slideIdx >= 1; slideIdx-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current := summary.Summaries[slideIdx]
		slideText := strings.TrimSpace(slideTextByNum[current.SlideNum])
		if slideText == "" {
			continue
		}

		earlier := collectEarlierPoints(summary.Summaries[:slideIdx])
		if len(earlier) == 0 {
			continue
		}

		misplaced := s.findMisplacedPoints(ctx, slideText, current.SlideNum, earlier)
		for _, item := range misplaced {
			if item.FromSlide < 1 || item.FromSlide >= current.SlideNum {
				continue
			}
			fromSummary := summary.FindSlide(item.FromSlide)
			if fromSummary == nil || item.PointIdx < 0 || item.PointIdx >= len(fromSummary.KeyPoints) {
				continue
			}

			point := fromSummary.KeyPoints[item.PointIdx]
			fromSummary.KeyPoints = append(fromSummary.KeyPoints[:item.PointIdx], fromSummary.KeyPoints[item.PointIdx+1:]...)
			current.KeyPoints = append(current.KeyPoints, point)

			movements = append(movements, &summaries.Movement{
				From:   item.FromSlide,
				To:     current.SlideNum,
				Point:  truncateMovementPoint(point),
				Reason: item.Reason,
			})
		}
	}

	if len(movements) == 0 {
		s.logger.Info("Refinement of ", lectureName, ": no points to relocate")
		return nil, nil
	}

	if _, err := s.store.SaveJSON(lectureName, artifacts.SummaryFile, &summary); err != nil {
		return nil, err
	}
	logPath, err := s.store.SaveJSON(lectureName, artifacts.RefinementLogFile, movements)
	if err != nil {
		return nil, err
	}
	if err := s.artifactRepo.Upsert(ctx, artifacts.NewArtifactMeta(lectureName, artifacts.KindRefinementLog, logPath)); err != nil {
		return nil, err
	}

	s.logger.Info("Refinement of ", lectureName, ": relocated ", len(movements), " points")
	return movements, nil
}

type earlierPoint struct {
	SlideNum int
	PointIdx int
	Text     string
}

func collectEarlierPoints(slideSummaries []*summaries.SlideSummary) []earlierPoint {
	var points []earlierPoint
	for _, ss := range slideSummaries {
		for idx, text := range ss.KeyPoints {
			if strings.TrimSpace(text) != "" {
				points = append(points, earlierPoint{SlideNum: ss.SlideNum, PointIdx: idx, Text: text})
			}
		}
	}
	return points
}

type misplacedPoint struct {
	FromSlide int    `json:"from_slide"`
	PointIdx  int    `json:"point_idx"`
	Reason    string `json:"reason"`
}

type misplacedResponse struct {
	Move []misplacedPoint `json:"move"`
}

func (s *refineService) findMisplacedPoints(ctx context.Context, slideText string, slideNum int, earlier []earlierPoint) []misplacedPoint {
	var pointLines []string
	for _, p := range earlier {
		text := p.Text
		if runes := []rune(text); len(runes) > refinePointTextLimit {
			text = string(runes[:refinePointTextLimit])
		}
		pointLines = append(pointLines, fmt.Sprintf("[슬라이드 %d, 포인트 %d] %s", p.SlideNum, p.PointIdx+1, text))
	}
	if runes := []rune(slideText); len(runes) > refineSlideTextLimit {
		slideText = string(runes[:refineSlideTextLimit])
	}

	prompt := fmt.Sprintf(`당신은 강의 노트 정리 전문가입니다.

현재 슬라이드 %d의 내용:
---
%s
---

아래는 이전 슬라이드들(1~%d)에 배치된 포인트들입니다:
---
%s
---

위 포인트들 중에서 "슬라이드 %d의 내용과 직접적으로 관련되어 있어서 슬라이드 %d으로 이동해야 할 포인트"가 있는지 확인하세요.

판단 기준:
1. 포인트가 현재 슬라이드의 주제/키워드와 명확히 일치하는 경우만 이동
2. 일반적인 도입부나 개요 설명은 이동하지 않음
3. 애매한 경우 이동하지 않음 (보수적으로 판단)

응답 형식 (JSON):
{"move": [
  {"from_slide": 슬라이드번호, "point_idx": 포인트인덱스(0부터), "reason": "이동 이유"}
]}

이동할 포인트가 없으면:
{"move": []}`,
		slideNum, slideText, slideNum-1, strings.Join(pointLines, "\n"), slideNum, slideNum)

	completion, err := s.model.Complete(ctx, prompt, refineMaxTokens)
	if err != nil {
		s.logger.Warn("Slide ", slideNum, " refinement failed: ", err)
		return nil
	}
	raw, err := connector.ExtractJSON(completion)
	if err != nil {
		return nil
	}
	var parsed misplacedResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logger.Warn("Slide ", slideNum, " refinement parsing failed: ", err)
		return nil
	}
	return parsed.Move
}

func truncateMovementPoint(point string) string {
	runes := []rune(point)
	if len(runes) <= movementLogPointLimit {
		return point
	}
	return string(runes[:movementLogPointLimit]) + "..."
}
