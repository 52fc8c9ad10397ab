package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/spiritquiz/backend/internal/config"
	"github.com/spiritquiz/backend/internal/conversation"
	"github.com/spiritquiz/backend/internal/entity"
)

const (
	welcomeText = "🦉 Ready to find out which animal carries your current energy?\nAnswer a handful of questions and I'll read the signs."
	errorText   = "Something went wrong with the quiz. Tap the button to try again, or /quiz to start over."
)

// QuizUsecase advances the quiz by one round.
type QuizUsecase interface {
	Step(ctx context.Context, transcript conversation.Transcript, answer *string) (entity.Step, conversation.Transcript, error)
}

// Bot drives the quiz over Telegram. It plays the same role as the browser
// client: custodian of each chat's transcript between rounds. Sessions live
// in an expiring cache, so an abandoned quiz simply evaporates.
type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      *config.TelegramConfig
	quiz     QuizUsecase
	sessions *sessionStore
	cleanup  func()
	logger   *zap.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewBot creates the Telegram quiz bot
func NewBot(cfg *config.TelegramConfig, quizUC QuizUsecase, cleanup func(), logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}
	api.Debug = false

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
		zap.Int64("id", api.Self.ID),
	)

	return &Bot{
		api:      api,
		cfg:      cfg,
		quiz:     quizUC,
		sessions: newSessionStore(cfg.SessionTTL),
		cleanup:  cleanup,
		logger:   logger,
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins polling for updates. It returns immediately; processing runs
// until Stop or context cancellation.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout
	updates := b.api.GetUpdatesChan(u)

	ctx = ctxzap.ToContext(ctx, b.logger)

	b.wg.Add(1)
	go b.processUpdates(ctx, updates)

	b.logger.Info("telegram bot started")
	return nil
}

// Stop stops polling and waits for in-flight updates to finish.
func (b *Bot) Stop() {
	close(b.stopChan)
	b.api.StopReceivingUpdates()
	b.wg.Wait()
	if b.cleanup != nil {
		b.cleanup()
	}
}

func (b *Bot) processUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	defer b.wg.Done()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		out := tgbotapi.NewMessage(chatID, welcomeText)
		out.ReplyMarkup = startKeyboard()
		b.send(ctx, out)
	case "quiz":
		b.beginQuiz(ctx, chatID)
	default:
		b.send(ctx, tgbotapi.NewMessage(chatID, "Try /quiz to begin."))
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	// Acknowledge the tap so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		ctxzap.Warn(ctx, "failed to answer callback", zap.Error(err))
	}

	data := cb.Data
	switch {
	case data == "quiz:start", data == "quiz:restart":
		b.sessions.Delete(chatID)
		b.beginQuiz(ctx, chatID)
	case strings.HasPrefix(data, "ans:"):
		b.handleAnswer(ctx, chatID, strings.TrimPrefix(data, "ans:"))
	}
}

func (b *Bot) beginQuiz(ctx context.Context, chatID int64) {
	b.advance(ctx, chatID, conversation.Transcript{}, nil)
}

func (b *Bot) handleAnswer(ctx context.Context, chatID int64, rawIndex string) {
	sess, ok := b.sessions.Get(chatID)
	if !ok || sess.Question == nil {
		b.send(ctx, tgbotapi.NewMessage(chatID, "That quiz has expired. Send /quiz to start a fresh one."))
		return
	}

	idx, err := strconv.Atoi(rawIndex)
	if err != nil || idx < 0 || idx >= len(sess.Question.Options) {
		ctxzap.Warn(ctx, "callback with bad option index",
			zap.Int64("chat_id", chatID),
			zap.String("data", rawIndex),
		)
		return
	}

	answer := sess.Question.Options[idx]
	b.advance(ctx, chatID, sess.Transcript, &answer)
}

// advance runs one quiz round and renders the step. On failure the stored
// transcript is left as it was, so the player's next tap replays the same
// round.
func (b *Bot) advance(ctx context.Context, chatID int64, transcript conversation.Transcript, answer *string) {
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		ctxzap.Debug(ctx, "failed to send typing action", zap.Error(err))
	}

	step, next, err := b.quiz.Step(ctx, transcript, answer)
	if err != nil {
		ctxzap.Error(ctx, "quiz round failed",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		out := tgbotapi.NewMessage(chatID, errorText)
		out.ReplyMarkup = startKeyboard()
		b.send(ctx, out)
		return
	}

	switch s := step.(type) {
	case entity.Question:
		b.sessions.Set(chatID, &chatSession{Transcript: next, Question: &s})
		out := tgbotapi.NewMessage(chatID, s.Text)
		// A start-over button appears only once the first answer is in.
		out.ReplyMarkup = questionKeyboard(s.Options, next.Len() > 2)
		b.send(ctx, out)
	case entity.Result:
		b.sessions.Delete(chatID)
		text := fmt.Sprintf("✨ Your spirit animal is...\n\n*%s*\n_%s_\n\n%s\n\n%s",
			s.Animal, s.Title, s.Description, s.ShareText)
		out := tgbotapi.NewMessage(chatID, text)
		out.ParseMode = tgbotapi.ModeMarkdown
		out.ReplyMarkup = retakeKeyboard()
		b.send(ctx, out)
	}
}

func (b *Bot) send(ctx context.Context, msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		ctxzap.Error(ctx, "failed to send telegram message",
			zap.Error(err),
			zap.Int64("chat_id", msg.ChatID),
		)
	}
}
