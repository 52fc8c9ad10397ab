package quiz

import (
	"context"

	"github.com/spiritquiz/backend/internal/entity"
)

// ModelConnector talks to the generative model service. Each call opens a
// fresh conversation seeded with the prior turns and sends one message; the
// raw reply text comes back untouched. Transport or provider failures wrap
// entity.ErrModelUnavailable.
type ModelConnector interface {
	SendMessage(ctx context.Context, prior []entity.Turn, message string) (string, error)
}
