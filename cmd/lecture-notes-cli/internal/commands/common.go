package commands

import (
	"fmt"
	"os"

	"lecture_note_service/internal/app"
	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/llm"
	"lecture_note_service/internal/domain/matching"
	"lecture_note_service/internal/domain/summaries"
	"lecture_note_service/internal/infrastructure/connector"
	"lecture_note_service/internal/infrastructure/pdfconv"
	"lecture_note_service/internal/infrastructure/persistence"
	"lecture_note_service/internal/infrastructure/persistence/models"
	"lecture_note_service/internal/infrastructure/sttparse"
	"lecture_note_service/internal/infrastructure/workspace"
	"lecture_note_service/internal/pkg/config"
	"lecture_note_service/internal/pkg/logger"
)

// pipelineDeps bundles everything a pipeline command needs.
type pipelineDeps struct {
	config    *config.CliConfig
	logger    logger.Logger
	scanner   lectures.Scanner
	catalog   lectures.CatalogService
	ingest    lectures.IngestService
	match     matching.MatchService
	summarize summaries.Summarizer
	refine    summaries.Refiner
	render    lectures.RenderService
	publish   lectures.PublishService
}

func setupConfig() (*config.CliConfig, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/cli-app.yaml"
	}

	cliConfig, err := config.InitializeCliConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cliConfig, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupDependencies wires the full pipeline. The language model is nil when
// no API key is configured; the services degrade per step in that case.
func setupDependencies() (*pipelineDeps, error) {
	cliConfig, err := setupConfig()
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(&cliConfig.Logger)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cliConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := db.AutoMigrate(&models.LectureModel{}, &models.ArtifactModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	lectureRepo, err := persistence.NewGormLectureRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create lecture repository: %w", err)
	}
	artifactRepo, err := persistence.NewGormArtifactRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact repository: %w", err)
	}

	scanner, err := workspace.NewFolderScanner(cliConfig.Pipeline.DataDir, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder scanner: %w", err)
	}
	store, err := workspace.NewFileStore(cliConfig.Pipeline.OutputDir, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	pdfProcessor, err := pdfconv.NewFitzProcessor(cliConfig.Pipeline.SlideDPI, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf processor: %w", err)
	}
	parser, err := sttparse.NewParser(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript parser: %w", err)
	}

	var model llm.LanguageModel
	if cliConfig.Anthropic.Enabled() {
		model, err = connector.NewAnthropicConnector(&cliConfig.Anthropic, loggerInstance)
		if err != nil {
			return nil, fmt.Errorf("failed to create language model connector: %w", err)
		}
	} else {
		loggerInstance.Warn("ANTHROPIC_API_KEY not set, model-assisted steps will degrade")
	}

	catalogService, err := app.NewCatalogService(scanner, lectureRepo, artifactRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}
	ingestService, err := app.NewIngestService(pdfProcessor, parser, store, lectureRepo, artifactRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingest service: %w", err)
	}
	matcher, err := app.NewMatcher(model, &cliConfig.Pipeline, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create matcher: %w", err)
	}
	matchService, err := app.NewMatchService(matcher, store, artifactRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create match service: %w", err)
	}
	summarizeService, err := app.NewSummarizeService(model, store, artifactRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create summarize service: %w", err)
	}
	refineService, err := app.NewRefineService(model, store, artifactRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create refine service: %w", err)
	}
	renderService, err := app.NewRenderService(store, lectureRepo, artifactRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create render service: %w", err)
	}
	publishService, err := app.NewPublishService(store, lectureRepo, &cliConfig.Pipeline, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create publish service: %w", err)
	}

	return &pipelineDeps{
		config:    cliConfig,
		logger:    loggerInstance,
		scanner:   scanner,
		catalog:   catalogService,
		ingest:    ingestService,
		match:     matchService,
		summarize: summarizeService,
		refine:    refineService,
		render:    renderService,
		publish:   publishService,
	}, nil
}
