// Package document is the document store backend. Entities are stored as
// JSON documents under typed keys, with secondary-index keys standing in
// for the relational backend's unique indexes.
package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Store implements the full store contract over a Redis-compatible
// document store.
type Store struct {
	client *redis.Client
	logger zerolog.Logger
}

// New creates a document-backed store.
func New(client *redis.Client, logger zerolog.Logger) *Store {
	return &Store{
		client: client,
		logger: logger,
	}
}

// Close releases the client connection.
func (s *Store) Close() {
	_ = s.client.Close()
}

// nextID allocates the next identifier from a named counter. Counter
// allocation keeps IDs int64 so records compare field-for-field against
// the relational backend.
func (s *Store) nextID(ctx context.Context, name string) (int64, error) {
	id, err := s.client.Incr(ctx, "seq:"+name).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", name, err)
	}
	return id, nil
}

// setJSON marshals v and stores it under key.
func (s *Store) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", key, err)
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// getJSON fetches key and unmarshals it into dest. A missing key
// surfaces as redis.Nil for the caller to map to the domain not-found
// error.
func (s *Store) getJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal document %s: %w", key, err)
	}
	return nil
}

func userKey(id int64) string         { return fmt.Sprintf("user:%d", id) }
func userEmailKey(email string) string { return fmt.Sprintf("user:email:%s", email) }
func profileKey(id int64) string      { return fmt.Sprintf("profile:%d", id) }
func profileUserKey(uid int64) string { return fmt.Sprintf("profile:user:%d", uid) }
func companyKey(id int64) string      { return fmt.Sprintf("company:%d", id) }
func jobKey(id int64) string          { return fmt.Sprintf("job:%d", id) }
func applicationKey(id int64) string  { return fmt.Sprintf("application:%d", id) }
func applicationPairKey(studentID, jobID int64) string {
	return fmt.Sprintf("application:job:%d:%d", studentID, jobID)
}
func userApplicationsKey(uid int64) string { return fmt.Sprintf("applications:user:%d", uid) }
func userNotificationsKey(uid int64) string { return fmt.Sprintf("notifications:user:%d", uid) }
func notificationKey(id int64) string       { return fmt.Sprintf("notification:%d", id) }

const (
	profilesKey     = "profiles"
	companiesKey    = "companies"
	jobsKey         = "jobs"
	applicationsKey = "applications"
)
