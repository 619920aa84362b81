package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flowbook/models"
)

// sessionKeyPrefix namespaces booking session keys in the shared cache.
const sessionKeyPrefix = "bookingflow:"

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// StartSession creates a fresh FlowState for the business identified by slug,
// applies any URL-supplied preselection against the loaded catalog, stores
// the state in Redis under a new session id, and returns both.
func (s *DefaultSessionService) StartSession(ctx context.Context, businessSlug string, preselect models.PreselectionInput) (string, *models.FlowState, error) {
	biz, err := s.CatalogSvc.GetBusinessBySlug(ctx, businessSlug)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve business: %w", err)
	}

	state := Initial()
	state = Reduce(state, SetBusinessInfo{Info: *biz})
	state = Reduce(state, SetFlexibleSettings{Settings: biz.FlexibleSettings})
	if biz.Timezone != "" {
		// One-way sync from the business profile; the controller never
		// writes a timezone back.
		state = Reduce(state, SetTimezone{Timezone: biz.Timezone})
	}

	if !preselect.Empty() {
		cat, err := s.CatalogSvc.GetCatalog(ctx, biz.ID)
		if err != nil {
			return "", nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		staff, err := s.DirectorySvc.GetStaff(ctx, biz.ID)
		if err != nil {
			return "", nil, fmt.Errorf("failed to load staff: %w", err)
		}
		locations, err := s.DirectorySvc.GetLocations(ctx, biz.ID)
		if err != nil {
			return "", nil, fmt.Errorf("failed to load locations: %w", err)
		}
		state = ResolvePreselection(state, preselect, *cat, staff, locations, s.Logger)
	}

	sessionID := uuid.New().String()
	if err := s.store(ctx, sessionID, state); err != nil {
		return "", nil, err
	}

	s.Logger.Info("booking session started",
		zap.String("sessionID", sessionID),
		zap.String("business", biz.Slug),
		zap.String("step", state.CurrentStep.String()))
	return sessionID, &state, nil
}

// GetState returns a read-only snapshot of the session's flow state.
func (s *DefaultSessionService) GetState(ctx context.Context, sessionID string) (*models.FlowState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Dispatch applies a single action through the reducer and persists the
// result. Actions are processed strictly in arrival order per session.
func (s *DefaultSessionService) Dispatch(ctx context.Context, sessionID string, action Action) (*models.FlowState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state = Reduce(state, action)
	if err := s.store(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Advance moves the wizard forward one step, but only when the current
// step's gating predicate passes.
func (s *DefaultSessionService) Advance(ctx context.Context, sessionID string) (*models.FlowState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !CanProceed(state) {
		return &state, NewStepIncompleteError(state.CurrentStep.String())
	}
	state = Reduce(state, SetStep{Step: NextStep(state)})
	if err := s.store(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Back moves the wizard to the previous step. Backward navigation is never
// gated.
func (s *DefaultSessionService) Back(ctx context.Context, sessionID string) (*models.FlowState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state = Reduce(state, SetStep{Step: PreviousStep(state)})
	if err := s.store(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return &state, nil
}

// CancelSession discards the session entirely. "Start over" within a live
// session is a ResetFlow dispatch instead.
func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) load(ctx context.Context, sessionID string) (models.FlowState, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return models.FlowState{}, ErrSessionNotFound
	}
	var state models.FlowState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return models.FlowState{}, fmt.Errorf("failed to parse booking session: %w", err)
	}
	if state.FormData == nil {
		state.FormData = models.FormData{}
	}
	return state, nil
}

func (s *DefaultSessionService) store(ctx context.Context, sessionID string, state models.FlowState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if err := s.Cache.Set(ctx, sessionKey(sessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
