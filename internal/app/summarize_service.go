package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lecture_note_service/internal/domain/artifacts"
	"lecture_note_service/internal/domain/llm"
	"lecture_note_service/internal/domain/matching"
	"lecture_note_service/internal/domain/summaries"
	"lecture_note_service/internal/infrastructure/connector"
	"lecture_note_service/internal/pkg/logger"
)

const (
	summarizeMaxTokens    = 500
	slideContextLimit     = 500
	fallbackTakeawayLimit = 3
	takeawaysPromptPoints = 60
)

// summarizeService implements the Summarizer interface distilling matched
// utterances into per-slide summaries, a Q&A section and takeaways
type summarizeService struct {
	model        llm.LanguageModel
	store        artifacts.Store
	artifactRepo artifacts.ArtifactRepository
	logger       logger.Logger
}

// NewSummarizeService creates a new instance of Summarizer
func NewSummarizeService(
	model llm.LanguageModel,
	store artifacts.Store,
	artifactRepo artifacts.ArtifactRepository,
	logger logger.Logger,
) (summaries.Summarizer, error) {
	return &summarizeService{
		model:        model,
		store:        store,
		artifactRepo: artifactRepo,
		logger:       logger,
	}, nil
}

func (s *summarizeService) Summarize(ctx context.Context, lectureName string) (*summaries.LectureSummary, error) {
	var matches []*matching.SlideMatch
	if err := s.store.LoadJSON(lectureName, artifacts.SlideMatchesFile, &matches); err != nil {
		return nil, fmt.Errorf("lecture %s has no slide matches, run match first: %w", lectureName, err)
	}
	var metadata summaries.Metadata
	if err := s.store.LoadJSON(lectureName, artifacts.MetadataFile, &metadata); err != nil {
		return nil, fmt.Errorf("lecture %s has no metadata, run ingest first: %w", lectureName, err)
	}
	slideTexts, err := s.loadSlideTexts(lectureName)
	if err != nil {
		return nil, err
	}

	summary := &summaries.LectureSummary{Metadata: metadata}
	for _, match := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slideSummary := s.summarizeSlide(ctx, match, slideTexts[match.SlideNum])
		summary.Summaries = append(summary.Summaries, slideSummary)
	}

	summary.QASection = extractQASection(summary.Summaries, matches, metadata.MainSpeaker)
	summary.KeyTakeaways = s.generateTakeaways(ctx, summary.Summaries)

	path, err := s.store.SaveJSON(lectureName, artifacts.SummaryFile, summary)
	if err != nil {
		return nil, err
	}
	if err := s.artifactRepo.Upsert(ctx, artifacts.NewArtifactMeta(lectureName, artifacts.KindSummary, path)); err != nil {
		return nil, err
	}

	withContent := 0
	for _, ss := range summary.Summaries {
		if len(ss.KeyPoints) > 0 {
			withContent++
		}
	}
	s.logger.Info("Summarized ", lectureName, ": ", withContent, "/", len(summary.Summaries),
		" slides with content, ", len(summary.QASection), " Q&A items, ", len(summary.KeyTakeaways), " takeaways")
	return summary, nil
}

func (s *summarizeService) loadSlideTexts(lectureName string) (map[int]string, error) {
	var slideList []struct {
		PageNum     int    `json:"page_num"`
		TextPreview string `json:"text_preview"`
	}
	if err := s.store.LoadJSON(lectureName, artifacts.SlidesInfoFile, &slideList); err != nil {
		return nil, fmt.Errorf("lecture %s has no slide info: %w", lectureName, err)
	}
	texts := make(map[int]string, len(slideList))
	for _, sl := range slideList {
		texts[sl.PageNum] = sl.TextPreview
	}
	return texts, nil
}

type slideSummaryResponse struct {
	KeyPoints []string `json:"key_points"`
	IsQA      bool     `json:"is_qa"`
	Category  string   `json:"category"`
}

func (s *summarizeService) summarizeSlide(ctx context.Context, match *matching.SlideMatch, slideText string) *summaries.SlideSummary {
	result := &summaries.SlideSummary{SlideNum: match.SlideNum, KeyPoints: []string{}}
	if len(match.Utterances) == 0 {
		return result
	}
	result.RawContent = utteranceText(match)
	if s.model == nil {
		return result
	}

	prompt := buildSlideSummaryPrompt(match, slideText)
	completion, err := s.model.Complete(ctx, prompt, summarizeMaxTokens)
	if err != nil {
		s.logger.Warn("Slide ", match.SlideNum, " summary failed: ", err)
		return result
	}
	raw, err := connector.ExtractJSON(completion)
	if err != nil {
		s.logger.Warn("Slide ", match.SlideNum, " summary parsing failed: ", err)
		return result
	}
	var parsed slideSummaryResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logger.Warn("Slide ", match.SlideNum, " summary parsing failed: ", err)
		return result
	}

	result.KeyPoints = parsed.KeyPoints
	if result.KeyPoints == nil {
		result.KeyPoints = []string{}
	}
	result.IsQA = parsed.IsQA
	result.Category = parsed.Category
	return result
}

// utteranceText flattens a slide's utterances into the "[speaker] content"
// form the prompt and the raw fallback share.
func utteranceText(match *matching.SlideMatch) string {
	var lines []string
	for _, u := range match.Utterances {
		lines = append(lines, fmt.Sprintf("[%s] %s", u.Speaker, u.Content))
	}
	return strings.Join(lines, "\n")
}

func buildSlideSummaryPrompt(match *matching.SlideMatch, slideText string) string {
	if runes := []rune(slideText); len(runes) > slideContextLimit {
		slideText = string(runes[:slideContextLimit])
	}
	if slideText == "" {
		slideText = "(없음)"
	}

	return fmt.Sprintf(`당신은 강의 내용을 요약하는 전문가입니다.

다음은 슬라이드 %d번에서 강연자가 설명한 내용입니다.

## 슬라이드 텍스트 (있는 경우):
%s

## 강연 내용:
%s

위 내용을 분석하여 다음 JSON 형식으로 응답해주세요:

{
  "key_points": ["핵심 포인트 1", "핵심 포인트 2", ...],
  "is_qa": true/false,
  "category": "lecture" | "qa" | "intro" | "tangent" | "technical_issue"
}

규칙:
1. key_points: 강의의 핵심 내용만 추출 (최대 5개)
   - 잡담, 기술적 문제(화면 조정 등), 인사말은 제외
   - 학술적/기술적으로 중요한 내용만 포함
   - 각 포인트는 한 문장으로 명확하게
2. is_qa: 질문과 답변이 포함된 경우 true
3. category: 이 슬라이드 내용의 분류
   - lecture: 본 강의 내용
   - qa: 질의응답
   - intro: 소개/인사
   - tangent: 여담/잡담
   - technical_issue: 기술적 문제 해결`, match.SlideNum, slideText, utteranceText(match))
}

// extractQASection pairs audience questions with the main speaker's
// answers on slides flagged as Q&A.
func extractQASection(slideSummaries []*summaries.SlideSummary, matches []*matching.SlideMatch, mainSpeaker string) []*summaries.QAItem {
	matchBySlide := make(map[int]*matching.SlideMatch, len(matches))
	for _, m := range matches {
		matchBySlide[m.SlideNum] = m
	}

	var items []*summaries.QAItem
	for _, ss := range slideSummaries {
		if !ss.IsQA {
			continue
		}
		match, ok := matchBySlide[ss.SlideNum]
		if !ok {
			continue
		}

		var currentQ *summaries.QAItem
		for _, u := range match.Utterances {
			switch {
			case u.Speaker != mainSpeaker && strings.Contains(u.Content, "?"):
				currentQ = &summaries.QAItem{
					Question:  u.Content,
					SlideNum:  ss.SlideNum,
					Asker:     u.Speaker,
					Timestamp: u.Timestamp,
				}
			case u.Speaker == mainSpeaker && currentQ != nil:
				answer := u.Content
				if runes := []rune(answer); len(runes) > summaries.AnswerMaxLength {
					answer = string(runes[:summaries.AnswerMaxLength])
				}
				currentQ.Answer = answer
				items = append(items, currentQ)
				currentQ = nil
			}
		}
	}
	return items
}

func (s *summarizeService) generateTakeaways(ctx context.Context, slideSummaries []*summaries.SlideSummary) []string {
	var allPoints []string
	for _, ss := range slideSummaries {
		allPoints = append(allPoints, ss.KeyPoints...)
	}
	if len(allPoints) == 0 {
		return []string{}
	}
	if s.model == nil {
		if len(allPoints) > fallbackTakeawayLimit {
			allPoints = allPoints[:fallbackTakeawayLimit]
		}
		return allPoints
	}
	if len(allPoints) > takeawaysPromptPoints {
		allPoints = allPoints[:takeawaysPromptPoints]
	}

	prompt := fmt.Sprintf(`당신은 강의 내용을 종합하는 전문가입니다.

다음은 한 강의에서 추출된 핵심 포인트들입니다:

%s

위 내용을 종합하여 이 강의의 가장 중요한 Key Takeaways를 뽑아주세요.

규칙:
1. 3~5개의 takeaway
2. 각 takeaway는 한 문장으로 명확하게
3. 강의 전체를 관통하는 핵심 메시지 위주로
4. JSON 배열 형식으로 응답: ["takeaway1", "takeaway2", ...]`, strings.Join(allPoints, "\n- "))

	completion, err := s.model.Complete(ctx, prompt, summarizeMaxTokens)
	if err != nil {
		s.logger.Warn("Takeaway generation failed: ", err)
		return []string{}
	}
	raw, err := connector.ExtractJSON(completion)
	if err != nil {
		return []string{}
	}
	var takeaways []string
	if err := json.Unmarshal([]byte(raw), &takeaways); err != nil {
		return []string{}
	}
	return takeaways
}
