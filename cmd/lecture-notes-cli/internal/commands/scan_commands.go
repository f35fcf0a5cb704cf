package commands

import (
	"fmt"

	"lecture_note_service/internal/domain/lectures"

	"github.com/spf13/cobra"
)

// ScanCommandHandler encapsulates logic for listing lecture folders via CLI.
type ScanCommandHandler struct {
	deps *pipelineDeps
}

// NewScanCommandHandler initializes and returns a ScanCommandHandler instance
// with the configured pipeline dependencies.
func NewScanCommandHandler() (*ScanCommandHandler, error) {
	deps, err := setupDependencies()
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &ScanCommandHandler{deps: deps}, nil
}

// ScanCmd scans the data directory, refreshes the catalog and prints the
// lecture table
func (commandHandler *ScanCommandHandler) ScanCmd(cmd *cobra.Command, _ []string) {
	sources, err := commandHandler.deps.scanner.Scan(cmd.Context())
	if err != nil {
		commandHandler.deps.logger.Error("failed to scan data directory ", err)
		return
	}

	if _, err := commandHandler.deps.catalog.Refresh(cmd.Context()); err != nil {
		commandHandler.deps.logger.Warn("failed to refresh catalog ", err)
	}

	displayLectureList(sources)
}

// displayLectureList prints the scan table the way the interactive flow shows it.
func displayLectureList(sources []*lectures.LectureSource) {
	fmt.Println("\n" + separatorLine)
	fmt.Println("📚 강의 목록")
	fmt.Println(separatorLine)

	readyCount := 0
	for idx, source := range sources {
		marker := "⚠️"
		if source.IsReady() {
			marker = "✅"
			readyCount++
		} else if source.HasPDF() {
			marker = "📄"
		}

		fmt.Printf("  %2d. %s %s\n", idx+1, marker, source.Name)
		fmt.Printf("      %s\n", source.StatusString())
	}

	fmt.Println("----------------------------------------------------------------------")
	fmt.Printf("총 %d개 강의 중 %d개 처리 가능 (PDF+TXT 보유)\n", len(sources), readyCount)
	fmt.Println(separatorLine)
}

const separatorLine = "======================================================================"

// InitScanCommands registers the scan command
func InitScanCommands(rootCmd *cobra.Command) error {
	handler, err := NewScanCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create scan command handler %w", err)
	}

	var scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "List lecture folders in the data directory",
		Run:   handler.ScanCmd,
	}
	rootCmd.AddCommand(scanCmd)

	return nil
}
