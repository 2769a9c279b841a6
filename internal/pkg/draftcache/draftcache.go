package draftcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrDraftNotFound is returned when no draft exists for the user.
var ErrDraftNotFound = errors.New("complaint draft not found")

// Draft holds the fields of an abandoned complaint filing so a later attempt
// can be pre-filled. Stored as a JSON blob keyed by the submitter's user id.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	SavedAt     time.Time `json:"savedAt"`
}

// Store persists complaint drafts in Redis with a TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a draft store backed by the given Redis client.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func draftKey(userID int64) string {
	return fmt.Sprintf("complaint:draft:%d", userID)
}

// Save stores the draft for the user, replacing any previous draft.
func (s *Store) Save(ctx context.Context, userID int64, draft *Draft) error {
	draft.SavedAt = time.Now()
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal complaint draft: %w", err)
	}

	if err := s.client.Set(ctx, draftKey(userID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store complaint draft: %w", err)
	}
	return nil
}

// Load returns the user's saved draft, or ErrDraftNotFound.
func (s *Store) Load(ctx context.Context, userID int64) (*Draft, error) {
	payload, err := s.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load complaint draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal complaint draft: %w", err)
	}
	return &draft, nil
}

// Delete removes the user's draft. Deleting a missing draft is not an error.
func (s *Store) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, draftKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete complaint draft: %w", err)
	}
	return nil
}
