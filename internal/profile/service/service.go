package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	id "clauseguard/pkg/domain"
	dErrors "clauseguard/pkg/domain-errors"
	"clauseguard/pkg/platform/sentinel"

	"clauseguard/internal/profile/cache"
	"clauseguard/internal/profile/compiler"
	"clauseguard/internal/profile/events"
	"clauseguard/internal/profile/metrics"
	"clauseguard/internal/profile/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Store is the persistence the service needs; satisfied by store.InMemoryStore
// and store.PostgresStore.
type Store interface {
	Save(ctx context.Context, profile *models.UserPersonalizationProfile) error
	Get(ctx context.Context, userID id.UserID) (*models.UserPersonalizationProfile, error)
	Delete(ctx context.Context, userID id.UserID) error
}

// EventSink receives derived-profile events; satisfied by events.Publisher.
type EventSink interface {
	Emit(ctx context.Context, action string, userID id.UserID, version id.SchemaVersion, derived *models.DerivedProfile)
}

// Service orchestrates the compiler over persistence, cache, and events. It
// keeps orchestration out of handlers and leaves all data rules to the
// compiler package.
type Service struct {
	store   Store
	cache   *cache.ProfileCache
	sink    EventSink
	weights *compiler.Weights
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
	now     func() time.Time

	// Reconciliation is read-modify-write over the whole profile; the per-user
	// lock guarantees at most one in-flight reconciliation per user.
	userMu sync.Mutex
	users  map[id.UserID]*sync.Mutex
}

// New creates a profile service. Sink may be nil (events disabled).
func New(store Store, profileCache *cache.ProfileCache, sink EventSink, weights *compiler.Weights, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		cache:   profileCache,
		sink:    sink,
		weights: weights,
		metrics: m,
		logger:  logger,
		tracer:  otel.Tracer("clauseguard/internal/profile/service"),
		now:     time.Now,
		users:   make(map[id.UserID]*sync.Mutex),
	}
}

func (s *Service) lockUser(userID id.UserID) func() {
	s.userMu.Lock()
	mu, ok := s.users[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.users[userID] = mu
	}
	s.userMu.Unlock()
	mu.Lock()
	return mu.Unlock
}

// SubmitQuiz validates a full quiz submission, derives the computed profile,
// assembles and persists the document, and emits a profile_computed event.
func (s *Service) SubmitQuiz(ctx context.Context, q *models.QuizResponse) (*models.UserPersonalizationProfile, error) {
	ctx, span := s.tracer.Start(ctx, "profile.SubmitQuiz")
	defer span.End()

	if err := compiler.ValidateQuiz(q); err != nil {
		s.metrics.ValidationFailures.Inc()
		return nil, err
	}

	deriveStart := time.Now()
	derived, err := compiler.Derive(q, s.weights)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "derivation failed")
	}
	s.metrics.ObserveDerive(deriveStart)

	profile := compiler.Assemble(q, derived)
	profile.UpdatedAt = s.now().UTC()

	unlock := s.lockUser(profile.UserID)
	defer unlock()

	if err := s.cache.Invalidate(ctx, profile.UserID); err != nil {
		s.logger.WarnContext(ctx, "profile cache invalidation failed", "user_id", profile.UserID, "error", err)
	}
	if err := s.store.Save(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile")
	}
	s.metrics.ProfilesCompiled.Inc()
	span.SetAttributes(attribute.String("profile.explanation_style", string(derived.ExplanationStyle)))

	if s.sink != nil {
		s.sink.Emit(ctx, events.ActionProfileComputed, profile.UserID, profile.Version, derived)
	}
	return profile, nil
}

// GetProfile returns the stored profile, read through the cache.
func (s *Service) GetProfile(ctx context.Context, userID id.UserID) (*models.UserPersonalizationProfile, error) {
	ctx, span := s.tracer.Start(ctx, "profile.GetProfile")
	defer span.End()

	if cached, err := s.cache.Get(ctx, userID); err == nil {
		s.metrics.CacheHits.Inc()
		return cached, nil
	}
	s.metrics.CacheMisses.Inc()

	profile, err := s.store.Get(ctx, userID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "no profile for user")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}
	if err := s.cache.Set(ctx, profile); err != nil {
		s.logger.WarnContext(ctx, "profile cache population failed", "user_id", userID, "error", err)
	}
	return profile, nil
}

// UpdateSection applies a whole-section replacement to the stored profile.
// The update is all-or-nothing: validation failure leaves the stored document
// untouched. When recompute is true the derivation engine is replayed over
// the merged document before persisting.
func (s *Service) UpdateSection(ctx context.Context, userID id.UserID, section id.QuizSection, data json.RawMessage, recompute bool) (*models.UserPersonalizationProfile, error) {
	ctx, span := s.tracer.Start(ctx, "profile.UpdateSection",
		trace.WithAttributes(attribute.String("profile.section", section.String())))
	defer span.End()

	start := time.Now()
	unlock := s.lockUser(userID)
	defer unlock()

	prior, err := s.store.Get(ctx, userID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "no profile for user")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}

	updated, err := compiler.Reconcile(prior, compiler.ReconcileRequest{
		Section:   section,
		Data:      data,
		Recompute: recompute,
	}, s.weights)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			s.metrics.ValidationFailures.Inc()
		}
		return nil, err
	}
	updated.UpdatedAt = s.now().UTC()

	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "profile cache invalidation failed", "user_id", userID, "error", err)
	}
	if err := s.store.Save(ctx, updated); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile")
	}
	s.metrics.SectionsReconciled.Inc()
	s.metrics.ObserveReconcile(start)

	if recompute && s.sink != nil {
		s.sink.Emit(ctx, events.ActionProfileRecomputed, userID, updated.Version, updated.ComputedProfile)
	}
	return updated, nil
}

// Recompute replays the derivation engine over the stored document, refreshing
// ComputedProfile without touching any raw section. Used after weight table
// rollouts.
func (s *Service) Recompute(ctx context.Context, userID id.UserID) (*models.UserPersonalizationProfile, error) {
	ctx, span := s.tracer.Start(ctx, "profile.Recompute")
	defer span.End()

	unlock := s.lockUser(userID)
	defer unlock()

	prior, err := s.store.Get(ctx, userID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "no profile for user")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}

	deriveStart := time.Now()
	derived, err := compiler.Derive(prior.QuizView(), s.weights)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "derivation failed")
	}
	s.metrics.ObserveDerive(deriveStart)

	updated := *prior
	updated.ComputedProfile = derived
	updated.UpdatedAt = s.now().UTC()

	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "profile cache invalidation failed", "user_id", userID, "error", err)
	}
	if err := s.store.Save(ctx, &updated); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile")
	}

	if s.sink != nil {
		s.sink.Emit(ctx, events.ActionProfileRecomputed, userID, updated.Version, derived)
	}
	return &updated, nil
}
