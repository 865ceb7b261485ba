package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// KV is the subset of the redis client the store needs. *redis.Client satisfies it.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps session data server side; the cookie only carries a random id.
type RedisStore struct {
	kv      KV
	prefix  string
	options CookieOptions
}

// NewRedisStore creates a RedisStore. Keys are "<prefix><session id>".
func NewRedisStore(kv KV, prefix string, options CookieOptions) *RedisStore {
	return &RedisStore{kv: kv, prefix: prefix, options: options}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.options.Name)
	if err != nil {
		return &Session{}, nil
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return &Session{}, nil
	}

	data, err := s.kv.Get(r.Context(), s.key(cookie.Value)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	sess := &Session{}
	if err := json.Unmarshal(data, sess); err != nil {
		return &Session{}, nil
	}
	sess.ID = cookie.Value
	return sess, nil
}

func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, sess *Session) error {
	if sess.IsEmpty() {
		if sess.ID == "" {
			return nil
		}
		if err := s.kv.Del(r.Context(), s.key(sess.ID)).Err(); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		s.options.clear(w)
		sess.ID = ""
		return nil
	}

	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ttl := time.Duration(s.options.MaxAge) * time.Second
	if err := s.kv.Set(r.Context(), s.key(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.options.write(w, sess.ID, s.options.MaxAge)
	return nil
}
