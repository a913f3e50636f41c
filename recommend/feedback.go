package recommend

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Feedback is a user's reaction to a recommended product or promotion.
// Exactly one of ProductID / PromotionID is usually set.
type Feedback struct {
	UserID        int
	ProductID     *int
	PromotionID   *int
	FeedbackType  string
	FeedbackValue *float64
	CreatedAt     time.Time
}

// FeedbackStore persists recommendation feedback.
type FeedbackStore interface {
	Save(ctx context.Context, fb Feedback) error
}

// MemoryFeedbackStore keeps feedback in memory. It backs the service when no
// database is configured and is the store used in tests.
type MemoryFeedbackStore struct {
	mu      sync.Mutex
	entries []Feedback
}

// NewMemoryFeedbackStore returns an empty in-memory store.
func NewMemoryFeedbackStore() *MemoryFeedbackStore {
	return &MemoryFeedbackStore{}
}

func (s *MemoryFeedbackStore) Save(ctx context.Context, fb Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, fb)
	return nil
}

// Entries returns a copy of everything saved so far.
func (s *MemoryFeedbackStore) Entries() []Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Feedback, len(s.entries))
	copy(out, s.entries)
	return out
}

// PostgresFeedbackStore persists feedback rows in Postgres.
type PostgresFeedbackStore struct {
	pool *pgxpool.Pool
}

// NewPostgresFeedbackStore wraps an existing connection pool.
func NewPostgresFeedbackStore(pool *pgxpool.Pool) *PostgresFeedbackStore {
	return &PostgresFeedbackStore{pool: pool}
}

// EnsureSchema creates the feedback table if it does not exist yet.
func (s *PostgresFeedbackStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS recommendation_feedback (
			id BIGSERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT,
			promotion_id INT,
			feedback_type TEXT NOT NULL,
			feedback_value DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL
		)
	`
	_, err := s.pool.Exec(ctx, query)
	return err
}

func (s *PostgresFeedbackStore) Save(ctx context.Context, fb Feedback) error {
	query := `
		INSERT INTO recommendation_feedback (user_id, product_id, promotion_id, feedback_type, feedback_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, query, fb.UserID, fb.ProductID, fb.PromotionID, fb.FeedbackType, fb.FeedbackValue, fb.CreatedAt)
	return err
}
