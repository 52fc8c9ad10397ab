package builder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/spiritquiz/backend/internal/api"
	quizapi "github.com/spiritquiz/backend/internal/api/quiz"
	"github.com/spiritquiz/backend/internal/config"
	"github.com/spiritquiz/backend/internal/integration/gemini"
	"github.com/spiritquiz/backend/internal/pkg/logger"
	"github.com/spiritquiz/backend/internal/telegram"
	quizuc "github.com/spiritquiz/backend/internal/usecase/quiz"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	quizUC, cleanup, err := buildQuizUsecase(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	quizHandler := quizapi.NewHandler(quizUC)
	router := api.SetupRouter(quizHandler, cfg, log)
	log.Info("HTTP router configured")

	// WriteTimeout leaves headroom over the 60s handler timeout: one round
	// blocks on the model for up to that long.
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:  server,
		cleanup: cleanup,
		logger:  log,
	}, nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (*telegram.Bot, *zap.Logger, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.TelegramCfg.BotToken == "" {
		return nil, nil, errors.New("TELEGRAM_BOT_TOKEN is not set")
	}

	quizUC, cleanup, err := buildQuizUsecase(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	bot, err := telegram.NewBot(&cfg.TelegramCfg, quizUC, cleanup, log)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	log.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, log, nil
}

func buildQuizUsecase(ctx context.Context, cfg *config.Config, log *zap.Logger) (*quizuc.Usecase, func(), error) {
	var model quizuc.ModelConnector
	cleanup := func() {}

	if cfg.EnableMocks {
		log.Info("Using mock model connector")
		model = gemini.NewMockConnector(log)
	} else {
		log.Info("Using Gemini model connector")
		conn, closeFn, err := gemini.NewConnector(ctx, cfg.GeminiCfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("setup gemini connector: %w", err)
		}
		model = conn
		cleanup = closeFn
	}

	return quizuc.NewUsecase(model, cfg.GeminiCfg.Retry, log), cleanup, nil
}
