package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/spiritquiz/backend/internal/config"
	"github.com/spiritquiz/backend/internal/entity"
)

// Connector drives conversations against the Gemini API. It implements the
// quiz usecase's ModelConnector.
type Connector struct {
	model  *genai.GenerativeModel
	logger *zap.Logger
}

// NewConnector builds the Gemini client. The returned cleanup func closes
// the underlying connection and must be called on shutdown.
func NewConnector(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*Connector, func(), error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	model.SetTemperature(cfg.Temperature)
	model.SetTopP(cfg.TopP)
	model.SetTopK(cfg.TopK)

	logger.Info("gemini connector initialized",
		zap.String("model", cfg.Model),
		zap.Int32("max_output_tokens", cfg.MaxOutputTokens),
	)

	c := &Connector{model: model, logger: logger}
	return c, func() { _ = client.Close() }, nil
}

// SendMessage opens a chat seeded with the prior turns and sends one
// message, returning the raw reply text. Any transport or provider failure
// wraps entity.ErrModelUnavailable.
func (c *Connector) SendMessage(ctx context.Context, prior []entity.Turn, message string) (string, error) {
	cs := c.model.StartChat()
	cs.History = toContents(prior)

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrModelUnavailable, err)
	}

	text, err := replyText(resp)
	if err != nil {
		return "", err
	}

	ctxzap.Debug(ctx, "gemini reply received", zap.Int("reply_len", len(text)))

	return text, nil
}

func toContents(turns []entity.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		contents = append(contents, &genai.Content{
			Role:  string(t.Role),
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}
	return contents
}

// replyText flattens the first candidate's text parts.
func replyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: response carried no candidates", entity.ErrModelUnavailable)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
