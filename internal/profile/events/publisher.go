// Package events publishes profile lifecycle events for the downstream
// risk-analysis engine. Publishing is fail-open: the profile is already
// persisted by the time an event is emitted, so a broker outage degrades to a
// logged warning and the consumer catches up from the store.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	id "clauseguard/pkg/domain"

	"clauseguard/internal/profile/models"
)

// Topic carrying profile.computed events.
const TopicProfileComputed = "clauseguard.profile.computed"

// Event actions.
const (
	ActionProfileComputed   = "profile_computed"
	ActionProfileRecomputed = "profile_recomputed"
)

// ProfileComputed is the wire shape consumed by the risk-analysis engine. It
// carries the derived output only; raw answers stay in the profile store.
type ProfileComputed struct {
	EventID        string                `json:"eventId"`
	Action         string                `json:"action"`
	UserID         string                `json:"userId"`
	SchemaVersion  string                `json:"schemaVersion"`
	WeightsVersion string                `json:"weightsVersion"`
	Derived        models.DerivedProfile `json:"derived"`
	EmittedAt      time.Time             `json:"emittedAt"`
}

// Publisher emits profile events to Kafka.
type Publisher struct {
	client *kgo.Client
	logger *slog.Logger
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a logger for delivery failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

// New connects to the brokers and ensures the topic exists. Returns nil when
// no brokers are configured (event publishing disabled).
func New(ctx context.Context, brokers []string, opts ...Option) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, nil
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(TopicProfileComputed),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	if err := ensureTopic(ctx, client); err != nil {
		client.Close()
		return nil, err
	}

	p := &Publisher{client: client}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// ensureTopic creates the profile.computed topic when missing so a fresh
// cluster works without manual bootstrap. Existing topics are left untouched.
func ensureTopic(ctx context.Context, client *kgo.Client) error {
	adm := kadm.NewClient(client)
	topics, err := adm.ListTopics(ctx, TopicProfileComputed)
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}
	if topics.Has(TopicProfileComputed) {
		return nil
	}
	if _, err := adm.CreateTopic(ctx, 3, 1, nil, TopicProfileComputed); err != nil {
		return fmt.Errorf("create topic %s: %w", TopicProfileComputed, err)
	}
	return nil
}

// Emit publishes one event, keyed by user so per-user ordering is preserved
// across partitions. Delivery is asynchronous; failures are logged, never
// propagated to the caller.
func (p *Publisher) Emit(ctx context.Context, action string, userID id.UserID, version id.SchemaVersion, derived *models.DerivedProfile) {
	if p == nil || derived == nil {
		return
	}
	event := ProfileComputed{
		EventID:        uuid.NewString(),
		Action:         action,
		UserID:         userID.String(),
		SchemaVersion:  version.String(),
		WeightsVersion: derived.WeightsVersion,
		Derived:        *derived,
		EmittedAt:      time.Now().UTC(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "failed to encode profile event", "error", err)
		}
		return
	}
	record := &kgo.Record{
		Key:   []byte(userID.String()),
		Value: value,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil && p.logger != nil {
			p.logger.Error("profile event delivery failed",
				"action", action,
				"user_id", userID.String(),
				"error", err,
			)
		}
	})
}

// Close flushes pending records and releases the client.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}
