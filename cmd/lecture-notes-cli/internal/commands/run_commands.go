package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lecture_note_service/internal/domain/lectures"

	"github.com/spf13/cobra"
)

// RunCommandHandler encapsulates logic for the interactive batch run via CLI.
type RunCommandHandler struct {
	deps  *pipelineDeps
	stdin *bufio.Reader
}

// NewRunCommandHandler initializes and returns a RunCommandHandler instance
// with the configured pipeline dependencies.
func NewRunCommandHandler() (*RunCommandHandler, error) {
	deps, err := setupDependencies()
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &RunCommandHandler{
		deps:  deps,
		stdin: bufio.NewReader(os.Stdin),
	}, nil
}

// RunCmd walks the interactive scan/select/confirm flow and runs the full
// pipeline on the chosen lecture. With --pause it blocks on one keypress
// before returning, regardless of the pipeline outcome.
func (commandHandler *RunCommandHandler) RunCmd(cmd *cobra.Command, _ []string) {
	pause, err := cmd.Flags().GetBool("pause")
	if err != nil {
		commandHandler.deps.logger.Error("invalid pause flag ", err)
		return
	}
	if pause {
		defer commandHandler.waitForKeypress()
	}

	fmt.Println("\n🎓 강의 노트 자동 정리 프로그램")
	fmt.Println(separatorLine)

	sources, err := commandHandler.deps.scanner.Scan(cmd.Context())
	if err != nil {
		commandHandler.deps.logger.Error("failed to scan data directory ", err)
		return
	}
	if len(sources) == 0 {
		fmt.Println("❌ 강의 폴더가 없습니다.")
		return
	}

	if _, err := commandHandler.deps.catalog.Refresh(cmd.Context()); err != nil {
		commandHandler.deps.logger.Warn("failed to refresh catalog ", err)
	}

	displayLectureList(sources)

	selected := commandHandler.selectLecture(sources)
	if selected == nil {
		return
	}

	if !commandHandler.confirmSelection(selected) {
		fmt.Println("\n취소되었습니다.")
		return
	}

	fmt.Println("\n✅ 작업 대상 확정!")
	fmt.Printf("   → %s\n", selected.Name)

	if err := commandHandler.runPipeline(cmd.Context(), selected); err != nil {
		commandHandler.deps.logger.Error("pipeline failed ", err)
		if markErr := commandHandler.deps.catalog.MarkFailed(cmd.Context(), selected.Name); markErr != nil {
			commandHandler.deps.logger.Warn("failed to mark lecture ", selected.Name, " failed ", markErr)
		}
		return
	}

	fmt.Println("\n🎉 완료되었습니다.")
}

// selectLecture prompts until a processable lecture is chosen or 0 exits.
func (commandHandler *RunCommandHandler) selectLecture(sources []*lectures.LectureSource) *lectures.LectureSource {
	for {
		fmt.Print("\n처리할 강의 번호를 입력하세요 (0: 종료): ")
		line, err := commandHandler.stdin.ReadString('\n')
		if err != nil {
			fmt.Println("\n프로그램을 종료합니다.")
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "0" {
			fmt.Println("프로그램을 종료합니다.")
			return nil
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("올바른 숫자를 입력해주세요.")
			continue
		}
		if choice < 1 || choice > len(sources) {
			fmt.Printf("1부터 %d 사이의 번호를 입력해주세요.\n", len(sources))
			continue
		}

		selected := sources[choice-1]
		if !selected.HasPDF() {
			fmt.Printf("⚠️  '%s' 폴더에 PDF 파일이 없습니다.\n", selected.Name)
			continue
		}
		if !selected.HasTranscript() {
			fmt.Printf("⚠️  '%s' 폴더에 TXT 파일이 없습니다.\n", selected.Name)
			fmt.Println("    STT 스크립트가 필요합니다. 다른 강의를 선택해주세요.")
			continue
		}

		return selected
	}
}

// confirmSelection shows the chosen folder's inputs and asks for a y/n answer.
func (commandHandler *RunCommandHandler) confirmSelection(source *lectures.LectureSource) bool {
	fmt.Println("\n" + separatorLine)
	fmt.Println("📋 선택한 강의 정보")
	fmt.Println(separatorLine)
	fmt.Printf("  폴더명: %s\n", source.Name)
	fmt.Printf("  경로:   %s\n", source.Path)
	fmt.Println()
	fmt.Println("  PDF 파일:")
	for _, pdf := range source.PDFFiles {
		fmt.Printf("    - %s\n", pdf)
	}
	fmt.Println()
	fmt.Println("  TXT 파일 (STT 스크립트):")
	for _, txt := range source.TranscriptFiles {
		fmt.Printf("    - %s\n", txt)
	}
	fmt.Println(separatorLine)

	fmt.Print("\n이 강의를 처리하시겠습니까? (y/n): ")
	line, err := commandHandler.stdin.ReadString('\n')
	if err != nil {
		return false
	}

	confirm := strings.ToLower(strings.TrimSpace(line))
	switch confirm {
	case "y", "yes", "예", "ㅇ":
		return true
	}
	return false
}

// runPipeline runs every step for one lecture, render included. Publishing
// stays a separate command so batch runs do not touch the site directory.
func (commandHandler *RunCommandHandler) runPipeline(ctx context.Context, source *lectures.LectureSource) error {
	fmt.Println("\n[1/5] PDF 및 TXT 파일 처리")
	meta, err := commandHandler.deps.ingest.Ingest(ctx, source)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	fmt.Printf("      슬라이드 %d장, 발화 스크립트 준비 완료\n", meta.SlideCount)

	fmt.Println("[2/5] 슬라이드-발화 매칭")
	matches, err := commandHandler.deps.match.MatchLecture(ctx, source.Name)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}
	fmt.Printf("      %d개 슬라이드에 매칭 완료\n", len(matches))

	fmt.Println("[3/5] 슬라이드 요약")
	summary, err := commandHandler.deps.summarize.Summarize(ctx, source.Name)
	if err != nil {
		return fmt.Errorf("summarize failed: %w", err)
	}
	fmt.Printf("      %d개 슬라이드 요약 완료\n", len(summary.Summaries))

	fmt.Println("[4/5] 핵심 내용 재배치")
	movements, err := commandHandler.deps.refine.Refine(ctx, source.Name)
	if err != nil {
		return fmt.Errorf("refine failed: %w", err)
	}
	fmt.Printf("      %d건 이동\n", len(movements))

	fmt.Println("[5/5] 강의 노트 생성")
	markdownPath, htmlPath, err := commandHandler.deps.render.Render(ctx, source.Name)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("      %s\n      %s\n", markdownPath, htmlPath)

	return nil
}

// waitForKeypress blocks until any input arrives on stdin.
func (commandHandler *RunCommandHandler) waitForKeypress() {
	fmt.Print("\n아무 키나 누르면 종료합니다...")
	buf := make([]byte, 1)
	_, _ = os.Stdin.Read(buf)
}

// InitRunCommands registers the interactive run command
func InitRunCommands(rootCmd *cobra.Command) error {
	handler, err := NewRunCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create run command handler %w", err)
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Interactively select a lecture and run the full pipeline",
		Run:   handler.RunCmd,
	}
	runCmd.Flags().BoolP("pause", "", false, "Wait for a keypress before exiting")
	rootCmd.AddCommand(runCmd)

	return nil
}
