package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// CodeExpiry is how long a verification code stays valid
const CodeExpiry = 10 * time.Minute

// ErrCodeNotFound is returned when no code is stored for the key
var ErrCodeNotFound = errors.New("verification code not found or expired")

// CodeStore keeps short-lived verification codes keyed by email
type CodeStore struct {
	client *redis.Client
}

// NewCodeStore creates a new verification code store
func NewCodeStore(client *redis.Client) *CodeStore {
	return &CodeStore{client: client}
}

func codeKey(email string) string {
	return "verification-code:" + email
}

// Put stores a code for the email, replacing any previous one
func (s *CodeStore) Put(ctx context.Context, email, code string) error {
	return s.client.Set(ctx, codeKey(email), code, CodeExpiry).Err()
}

// Get returns the stored code for the email
func (s *CodeStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

// Delete removes the stored code once it has been consumed
func (s *CodeStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, codeKey(email)).Err()
}
