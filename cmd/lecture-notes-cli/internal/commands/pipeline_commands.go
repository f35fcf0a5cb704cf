package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PipelineCommandHandler encapsulates logic for running individual pipeline
// steps via CLI.
type PipelineCommandHandler struct {
	deps *pipelineDeps
}

// NewPipelineCommandHandler initializes and returns a PipelineCommandHandler
// instance with the configured pipeline dependencies.
func NewPipelineCommandHandler() (*PipelineCommandHandler, error) {
	deps, err := setupDependencies()
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &PipelineCommandHandler{deps: deps}, nil
}

func (commandHandler *PipelineCommandHandler) lectureFlag(cmd *cobra.Command) (string, bool) {
	lectureName, err := cmd.Flags().GetString("lecture")
	if err != nil || lectureName == "" {
		commandHandler.deps.logger.Error("the --lecture flag is required")
		return "", false
	}
	return lectureName, true
}

func (commandHandler *PipelineCommandHandler) markFailed(cmd *cobra.Command, lectureName string) {
	if err := commandHandler.deps.catalog.MarkFailed(cmd.Context(), lectureName); err != nil {
		commandHandler.deps.logger.Warn("failed to mark lecture ", lectureName, " failed ", err)
	}
}

// IngestCmd converts the PDFs and transcripts of one lecture folder
func (commandHandler *PipelineCommandHandler) IngestCmd(cmd *cobra.Command, _ []string) {
	lectureName, ok := commandHandler.lectureFlag(cmd)
	if !ok {
		return
	}

	source, err := commandHandler.deps.scanner.Resolve(cmd.Context(), lectureName)
	if err != nil {
		commandHandler.deps.logger.Error("failed to resolve lecture folder ", err)
		return
	}

	meta, err := commandHandler.deps.ingest.Ingest(cmd.Context(), source)
	if err != nil {
		commandHandler.deps.logger.Error("ingest failed ", err)
		commandHandler.markFailed(cmd, lectureName)
		return
	}
	commandHandler.deps.logger.Info("Ingested ", meta.Name, " with ", meta.SlideCount, " slides")
}

// MatchCmd assigns transcript utterances to slides
func (commandHandler *PipelineCommandHandler) MatchCmd(cmd *cobra.Command, _ []string) {
	lectureName, ok := commandHandler.lectureFlag(cmd)
	if !ok {
		return
	}

	matches, err := commandHandler.deps.match.MatchLecture(cmd.Context(), lectureName)
	if err != nil {
		commandHandler.deps.logger.Error("match failed ", err)
		commandHandler.markFailed(cmd, lectureName)
		return
	}
	commandHandler.deps.logger.Info("Matched ", lectureName, " across ", len(matches), " slides")
}

// SummarizeCmd summarizes each slide and generates takeaways
func (commandHandler *PipelineCommandHandler) SummarizeCmd(cmd *cobra.Command, _ []string) {
	lectureName, ok := commandHandler.lectureFlag(cmd)
	if !ok {
		return
	}

	summary, err := commandHandler.deps.summarize.Summarize(cmd.Context(), lectureName)
	if err != nil {
		commandHandler.deps.logger.Error("summarize failed ", err)
		commandHandler.markFailed(cmd, lectureName)
		return
	}
	commandHandler.deps.logger.Info("Summarized ", lectureName, " into ", len(summary.Summaries), " slide summaries")
}

// RefineCmd moves misplaced key points to the slide they belong to
func (commandHandler *PipelineCommandHandler) RefineCmd(cmd *cobra.Command, _ []string) {
	lectureName, ok := commandHandler.lectureFlag(cmd)
	if !ok {
		return
	}

	movements, err := commandHandler.deps.refine.Refine(cmd.Context(), lectureName)
	if err != nil {
		commandHandler.deps.logger.Error("refine failed ", err)
		commandHandler.markFailed(cmd, lectureName)
		return
	}
	commandHandler.deps.logger.Info("Refined ", lectureName, " with ", len(movements), " movements")
}

// RenderCmd writes the markdown and HTML note documents
func (commandHandler *PipelineCommandHandler) RenderCmd(cmd *cobra.Command, _ []string) {
	lectureName, ok := commandHandler.lectureFlag(cmd)
	if !ok {
		return
	}

	markdownPath, htmlPath, err := commandHandler.deps.render.Render(cmd.Context(), lectureName)
	if err != nil {
		commandHandler.deps.logger.Error("render failed ", err)
		commandHandler.markFailed(cmd, lectureName)
		return
	}
	commandHandler.deps.logger.Info("Rendered ", markdownPath, " and ", htmlPath)
}

// PublishCmd copies rendered notes into the static site directory
func (commandHandler *PipelineCommandHandler) PublishCmd(cmd *cobra.Command, _ []string) {
	count, err := commandHandler.deps.publish.Publish(cmd.Context())
	if err != nil {
		commandHandler.deps.logger.Error("publish failed ", err)
		return
	}
	commandHandler.deps.logger.Info("Published ", count, " lectures to ", commandHandler.deps.config.Pipeline.SiteDir)
}

// InitPipelineCommands registers the individual pipeline step commands
func InitPipelineCommands(rootCmd *cobra.Command) error {
	handler, err := NewPipelineCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create pipeline command handler %w", err)
	}

	var ingestCmd = &cobra.Command{
		Use:   "ingest",
		Short: "Convert PDFs to slides and parse STT transcripts",
		Run:   handler.IngestCmd,
	}
	ingestCmd.Flags().StringP("lecture", "", "", "Lecture folder name (NN-speaker-topic-YYMMDD)")
	rootCmd.AddCommand(ingestCmd)

	var matchCmd = &cobra.Command{
		Use:   "match",
		Short: "Assign transcript utterances to slides",
		Run:   handler.MatchCmd,
	}
	matchCmd.Flags().StringP("lecture", "", "", "Lecture folder name (NN-speaker-topic-YYMMDD)")
	rootCmd.AddCommand(matchCmd)

	var summarizeCmd = &cobra.Command{
		Use:   "summarize",
		Short: "Summarize slide utterances into key points",
		Run:   handler.SummarizeCmd,
	}
	summarizeCmd.Flags().StringP("lecture", "", "", "Lecture folder name (NN-speaker-topic-YYMMDD)")
	rootCmd.AddCommand(summarizeCmd)

	var refineCmd = &cobra.Command{
		Use:   "refine",
		Short: "Move misplaced key points between slides",
		Run:   handler.RefineCmd,
	}
	refineCmd.Flags().StringP("lecture", "", "", "Lecture folder name (NN-speaker-topic-YYMMDD)")
	rootCmd.AddCommand(refineCmd)

	var renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render the markdown and HTML note documents",
		Run:   handler.RenderCmd,
	}
	renderCmd.Flags().StringP("lecture", "", "", "Lecture folder name (NN-speaker-topic-YYMMDD)")
	rootCmd.AddCommand(renderCmd)

	var publishCmd = &cobra.Command{
		Use:   "publish",
		Short: "Copy rendered notes into the static site directory",
		Run:   handler.PublishCmd,
	}
	rootCmd.AddCommand(publishCmd)

	return nil
}
