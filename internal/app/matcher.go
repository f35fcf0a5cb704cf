package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lecture_note_service/internal/domain/llm"
	"lecture_note_service/internal/domain/matching"
	"lecture_note_service/internal/domain/slides"
	"lecture_note_service/internal/domain/transcripts"
	"lecture_note_service/internal/infrastructure/connector"
	"lecture_note_service/internal/pkg/config"
	"lecture_note_service/internal/pkg/logger"
)

const (
	matchMaxTokens       = 2000
	promptUtteranceLimit = 30
	promptTextLimit      = 300
)

// slidingWindowMatcher implements the Matcher interface. A nil language
// model degrades every chunk to time-proportional assignment.
type slidingWindowMatcher struct {
	model    llm.LanguageModel
	settings *config.PipelineSettings
	logger   logger.Logger
}

// NewMatcher creates a new instance of Matcher
func NewMatcher(
	model llm.LanguageModel,
	settings *config.PipelineSettings,
	logger logger.Logger,
) (matching.Matcher, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &slidingWindowMatcher{
		model:    model,
		settings: settings,
		logger:   logger,
	}, nil
}

func (m *slidingWindowMatcher) Match(ctx context.Context, transcript *transcripts.Transcript, slideList []*slides.SlideMeta) ([]*matching.SlideMatch, error) {
	if len(slideList) == 0 {
		return nil, fmt.Errorf("no slides to match against")
	}
	if len(transcript.Utterances) == 0 {
		return nil, fmt.Errorf("no utterances to match")
	}

	matches := make([]*matching.SlideMatch, len(slideList))
	for i, s := range slideList {
		matches[i] = &matching.SlideMatch{
			SlideNum:   s.PageNum,
			SlideText:  s.TextPreview,
			Confidence: matching.ConfidenceUnknown,
		}
	}

	if m.model == nil {
		m.logger.Warn("No language model configured, using time-based matching")
		m.fallbackTimeBased(matches, transcript)
	} else if err := m.matchChunked(ctx, matches, transcript); err != nil {
		return nil, err
	}

	m.applyPageHints(matches, transcript)

	for _, match := range matches {
		match.Recount()
	}
	filled := 0
	for _, match := range matches {
		if len(match.Utterances) > 0 {
			filled++
		}
	}
	m.logger.Info("Matching complete: ", filled, "/", len(matches), " slides have utterances")
	return matches, nil
}

// fallbackTimeBased spreads utterances over slides proportionally to their
// timestamps.
func (m *slidingWindowMatcher) fallbackTimeBased(matches []*matching.SlideMatch, transcript *transcripts.Transcript) {
	numSlides := len(matches)
	lastSecond := transcript.TotalSeconds()
	timePerSlide := 1.0
	if lastSecond > 0 {
		timePerSlide = float64(lastSecond) / float64(numSlides)
	}

	for _, u := range transcript.Utterances {
		idx := int(float64(u.Seconds) / timePerSlide)
		if idx >= numSlides {
			idx = numSlides - 1
		}
		matches[idx].Utterances = append(matches[idx].Utterances, u)
		if matches[idx].Confidence == matching.ConfidenceUnknown {
			matches[idx].Confidence = matching.ConfidenceLow
			matches[idx].Notes = "time-based fallback"
		}
	}
}

// matchChunked walks the transcript in fixed chunks and asks the model to
// place each chunk's utterances inside a sliding window of candidate slides.
func (m *slidingWindowMatcher) matchChunked(ctx context.Context, matches []*matching.SlideMatch, transcript *transcripts.Transcript) error {
	numSlides := len(matches)
	lectureSeconds := m.lectureSeconds(transcript)
	avgSecPerSlide := float64(lectureSeconds) / float64(numSlides)

	slidesPerChunk := 5
	if avgSecPerSlide > 0 {
		slidesPerChunk = int(float64(m.settings.ChunkMinutes*60) / avgSecPerSlide)
	}
	windowSize := matching.WindowSize(slidesPerChunk, m.settings.WindowMultiplier)

	chunks := matching.SplitIntoChunks(transcript, m.settings.ChunkMinutes)
	m.logger.Info("Sliding window matching: ", len(chunks), " chunks, window size ", windowSize)

	windowStart := 0
	for chunkIdx, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunkUtterances := transcript.Utterances[chunk.StartIdx:chunk.EndIdx]

		winStart := windowStart - m.settings.OverlapBack
		if winStart < 0 {
			winStart = 0
		}
		winEnd := windowStart + windowSize
		if winEnd > numSlides || chunkIdx == len(chunks)-1 {
			winEnd = numSlides
		}

		assignments, err := m.matchChunkLLM(ctx, chunkUtterances, matches[winStart:winEnd], chunk)
		if err != nil {
			m.logger.Warn("Chunk ", chunkIdx+1, " model matching failed: ", err, ", splitting evenly")
			assignments = fallbackChunk(chunkUtterances, winStart, winEnd)
		}

		lastMatchedIdx := winStart
		for _, a := range assignments {
			if a.slideIdx < 0 || a.slideIdx >= numSlides || len(a.utterances) == 0 {
				continue
			}
			match := matches[a.slideIdx]
			match.Utterances = append(match.Utterances, a.utterances...)
			match.Confidence = a.confidence
			match.LLMVerified = a.llmVerified
			if a.slideIdx > lastMatchedIdx {
				lastMatchedIdx = a.slideIdx
			}
		}

		windowStart = lastMatchedIdx + 1
		if windowStart >= numSlides {
			windowStart = numSlides - 1
		}
	}
	return nil
}

// lectureSeconds decides the effective lecture length. The declared
// duration wins unless it strays more than 20% from the default, and the
// last utterance always sets a lower bound.
func (m *slidingWindowMatcher) lectureSeconds(transcript *transcripts.Transcript) int {
	defaultSeconds := m.settings.DefaultLectureMinutes * 60
	declared := transcripts.ParseKoreanDuration(transcript.Duration)
	lastSecond := transcript.TotalSeconds()

	var lectureSeconds int
	switch {
	case declared > 0 && ratioDiff(declared, defaultSeconds) < 0.2:
		lectureSeconds = defaultSeconds
	case declared > 0:
		lectureSeconds = declared
	case lastSecond > 0:
		lectureSeconds = lastSecond
	default:
		lectureSeconds = defaultSeconds
	}
	if lastSecond > lectureSeconds {
		lectureSeconds = lastSecond
	}
	return lectureSeconds
}

func ratioDiff(a, b int) float64 {
	diff := float64(a - b)
	if diff < 0 {
		diff = -diff
	}
	return diff / float64(b)
}

type chunkAssignment struct {
	slideIdx    int
	utterances  []*transcripts.Utterance
	confidence  string
	llmVerified bool
}

type chunkMatchItem struct {
	SlideNum         int    `json:"slide_num"`
	UtteranceIndices []int  `json:"utterance_indices"`
	Confidence       string `json:"confidence"`
}

func (m *slidingWindowMatcher) matchChunkLLM(ctx context.Context, chunkUtterances []*transcripts.Utterance, window []*matching.SlideMatch, chunk matching.Chunk) ([]chunkAssignment, error) {
	prompt := buildChunkPrompt(chunkUtterances, window, chunk)

	completion, err := m.model.Complete(ctx, prompt, matchMaxTokens)
	if err != nil {
		return nil, err
	}
	raw, err := connector.ExtractJSON(completion)
	if err != nil {
		return nil, err
	}
	var items []chunkMatchItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to parse chunk matches: %w", err)
	}

	var assignments []chunkAssignment
	for _, item := range items {
		var selected []*transcripts.Utterance
		for _, idx := range item.UtteranceIndices {
			if idx >= 0 && idx < len(chunkUtterances) {
				selected = append(selected, chunkUtterances[idx])
			}
		}
		if len(selected) == 0 {
			continue
		}
		confidence := item.Confidence
		if confidence == "" {
			confidence = matching.ConfidenceMedium
		}
		assignments = append(assignments, chunkAssignment{
			slideIdx:    item.SlideNum - 1,
			utterances:  selected,
			confidence:  confidence,
			llmVerified: true,
		})
	}
	return assignments, nil
}

func buildChunkPrompt(chunkUtterances []*transcripts.Utterance, window []*matching.SlideMatch, chunk matching.Chunk) string {
	startMin := chunk.StartSecs / 60
	endMin := chunk.EndSecs / 60

	var utteranceLines []string
	var pageHints []string
	for i, u := range chunkUtterances {
		content := u.Content
		if runes := []rune(content); len(runes) > promptTextLimit {
			content = string(runes[:promptTextLimit])
		}
		utteranceLines = append(utteranceLines, fmt.Sprintf("%d. [%s] %s: %s", i, u.Timestamp, u.Speaker, content))
		if u.SlideNum > 0 {
			pageHints = append(pageHints, fmt.Sprintf("  - [%s] 발화가 STT에서 슬라이드 %d번으로 표시됨", u.Timestamp, u.SlideNum))
		}
		if len(utteranceLines) >= promptUtteranceLimit {
			utteranceLines = append(utteranceLines, fmt.Sprintf("... (외 %d개 발화)", len(chunkUtterances)-promptUtteranceLimit))
			break
		}
	}

	pageHintText := ""
	if len(pageHints) > 0 {
		pageHintText = "\n## STT 페이지 번호 힌트 (우선 고려):\n" + strings.Join(pageHints, "\n") + "\n"
	}

	var slideLines []string
	for _, s := range window {
		text := s.SlideText
		if runes := []rune(text); len(runes) > promptTextLimit {
			text = string(runes[:promptTextLimit])
		}
		if text == "" {
			text = "(텍스트 없음)"
		}
		slideLines = append(slideLines, fmt.Sprintf("### 슬라이드 %d번\n%s", s.SlideNum, text))
	}

	firstSlide := window[0].SlideNum
	lastSlide := window[len(window)-1].SlideNum

	return fmt.Sprintf(`당신은 강의 슬라이드와 강연 녹취록(STT)을 매칭하는 전문가입니다.

아래는 강의의 **%d분 ~ %d분** 구간 발화 내용입니다.
이 발화들이 슬라이드 %d번 ~ %d번 중 어디에 해당하는지 매칭해주세요.
%s
## 발화 내용 (%d~%d분):
%s

## 슬라이드 윈도우 (%d~%d번):
%s

## 매칭 규칙:
1. 발화 내용과 슬라이드 텍스트의 주제/키워드를 비교하여 매칭
2. STT에 페이지 번호가 표시된 경우 해당 정보를 우선 신뢰
3. 강의는 순서대로 진행되므로, 슬라이드 번호는 대체로 오름차순
4. 하나의 발화는 하나의 슬라이드에만 배정
5. 이 시간대에 해당하지 않는 슬라이드는 빈 배열로

JSON 배열로 답변해주세요. 이 시간대에서 실제로 다룬 슬라이드만 포함:
[
  {
    "slide_num": 슬라이드 번호,
    "utterance_indices": [이 슬라이드에 해당하는 발화의 인덱스 (0부터 시작)],
    "confidence": "high" | "medium" | "low"
  }
]`,
		startMin, endMin, firstSlide, lastSlide,
		pageHintText,
		startMin, endMin, strings.Join(utteranceLines, "\n"),
		firstSlide, lastSlide, strings.Join(slideLines, "\n\n"))
}

// fallbackChunk splits the chunk's utterances evenly over the window.
func fallbackChunk(chunkUtterances []*transcripts.Utterance, winStart, winEnd int) []chunkAssignment {
	windowSize := winEnd - winStart
	if windowSize <= 0 {
		return nil
	}

	perSlide := len(chunkUtterances) / windowSize
	if perSlide < 1 {
		perSlide = 1
	}

	var assignments []chunkAssignment
	for i := 0; i < windowSize; i++ {
		start := i * perSlide
		end := start + perSlide
		if i == windowSize-1 {
			end = len(chunkUtterances)
		}
		if start >= len(chunkUtterances) {
			break
		}
		if end > len(chunkUtterances) {
			end = len(chunkUtterances)
		}
		selected := chunkUtterances[start:end]
		if len(selected) == 0 {
			continue
		}
		assignments = append(assignments, chunkAssignment{
			slideIdx:   winStart + i,
			utterances: selected,
			confidence: matching.ConfidenceLow,
		})
	}
	return assignments
}

// applyPageHints moves hinted utterances to the slide the speaker named,
// explicit page references outrank both the model and the fallback.
func (m *slidingWindowMatcher) applyPageHints(matches []*matching.SlideMatch, transcript *transcripts.Transcript) {
	numSlides := len(matches)
	moved := 0
	for _, u := range transcript.Utterances {
		if u.SlideNum < 1 || u.SlideNum > numSlides {
			continue
		}
		target := matches[u.SlideNum-1]
		if removeUtteranceExcept(matches, u, target) {
			target.Utterances = append(target.Utterances, u)
			moved++
		}
		if target.Confidence == matching.ConfidenceUnknown || target.Confidence == matching.ConfidenceLow {
			target.Confidence = matching.ConfidenceHigh
		}
	}
	if moved > 0 {
		m.logger.Info("Reassigned ", moved, " utterances by page hints")
	}
}

func removeUtteranceExcept(matches []*matching.SlideMatch, u *transcripts.Utterance, keep *matching.SlideMatch) bool {
	for _, match := range matches {
		for i, existing := range match.Utterances {
			if existing != u {
				continue
			}
			if match == keep {
				return false
			}
			match.Utterances = append(match.Utterances[:i], match.Utterances[i+1:]...)
			return true
		}
	}
	// Not assigned anywhere yet
	return true
}
