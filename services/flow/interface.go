package flow

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"flowbook/models"
	"flowbook/services/catalog"
	"flowbook/services/directory"
)

// SessionService manages the stateful public booking session: one FlowState
// aggregate per customer, held in Redis between requests and mutated only
// through reducer actions.
type SessionService interface {
	StartSession(ctx context.Context, businessSlug string, preselect models.PreselectionInput) (string, *models.FlowState, error)
	GetState(ctx context.Context, sessionID string) (*models.FlowState, error)
	Dispatch(ctx context.Context, sessionID string, action Action) (*models.FlowState, error)
	Advance(ctx context.Context, sessionID string) (*models.FlowState, error)
	Back(ctx context.Context, sessionID string) (*models.FlowState, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	CatalogSvc   catalog.Service
	DirectorySvc directory.Service
	Cache        *redis.Client
	SessionTTL   time.Duration
	Logger       *zap.Logger
}
