package quiz

import (
	"context"
	"errors"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/spiritquiz/backend/internal/conversation"
	"github.com/spiritquiz/backend/internal/entity"
	pkgRetry "github.com/spiritquiz/backend/internal/pkg/retry"
)

// Usecase runs one quiz round per call. It holds no per-player state: the
// transcript comes in with the request and goes back out with the reply,
// so any instance can serve any round.
type Usecase struct {
	model    ModelConnector
	retryCfg pkgRetry.RetryConfig
	logger   *zap.Logger
}

func NewUsecase(model ModelConnector, retryCfg pkgRetry.RetryConfig, logger *zap.Logger) *Usecase {
	return &Usecase{
		model:    model,
		retryCfg: retryCfg,
		logger:   logger,
	}
}

// Step advances the quiz by one round: record the player's answer (when
// given), replay the framed transcript to the model, and turn the reply
// into a validated step.
//
// On success the returned transcript carries the round's new turns. On any
// failure the caller's transcript comes back untouched; a round either
// commits fully or not at all.
func (u *Usecase) Step(ctx context.Context, transcript conversation.Transcript, answer *string) (
	entity.Step, conversation.Transcript, error,
) {
	next := transcript.Clone()
	if answer != nil {
		next.AppendUser(conversation.AnswerPrefix + *answer)
	}

	message := conversation.StartSentinel
	if text, ok := next.LastUserText(); ok {
		message = text
	}

	history := outboundHistory(next)

	ctxzap.Debug(ctx, "dispatching quiz round to model",
		zap.Int("history_len", len(history)),
		zap.Bool("has_answer", answer != nil),
	)

	// Only the model call is retried; a reply that fails extraction or
	// validation is a contract violation, not a transient fault.
	raw, err := retry.DoWithData(
		func() (string, error) {
			return u.model.SendMessage(ctx, history, message)
		},
		append(u.retryCfg.ToRetryOptions(),
			retry.Context(ctx),
			retry.RetryIf(func(err error) bool { return errors.Is(err, entity.ErrModelUnavailable) }),
			retry.LastErrorOnly(true),
		)...,
	)
	if err != nil {
		ctxzap.Error(ctx, "model call failed", zap.Error(err))
		return nil, transcript, err
	}

	span, err := conversation.ExtractJSON(raw)
	if err != nil {
		ctxzap.Error(ctx, "no JSON object in model reply",
			zap.Error(err),
			zap.String("raw_reply", raw),
		)
		return nil, transcript, err
	}

	step, err := conversation.ValidateStep(span)
	if err != nil {
		ctxzap.Error(ctx, "model reply failed step validation",
			zap.Error(err),
			zap.String("candidate", span),
		)
		return nil, transcript, err
	}

	next.AppendModel(raw)

	ctxzap.Info(ctx, "quiz step produced",
		zap.String("step_type", string(step.StepType())),
		zap.Int("transcript_len", next.Len()),
	)

	return step, next, nil
}

// outboundHistory prepends the fixed framing to the transcript: the quiz
// master preamble and its canned acknowledgment, then every real turn.
func outboundHistory(t conversation.Transcript) []entity.Turn {
	turns := t.Turns()
	out := make([]entity.Turn, 0, len(turns)+2)
	out = append(out,
		entity.Turn{Role: entity.RoleUser, Text: conversation.SystemPreamble},
		entity.Turn{Role: entity.RoleModel, Text: conversation.PreambleAck},
	)
	return append(out, turns...)
}
