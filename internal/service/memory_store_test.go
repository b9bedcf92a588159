// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
)

// ─────────────────────────────────────────────
// In-memory repositories with the same error contract as the Postgres ones
// ─────────────────────────────────────────────

type counter struct {
	attempts  int
	expiresAt time.Time
}

type memoryStore struct {
	mu sync.Mutex

	now func() time.Time

	tags     map[models.TagID]models.SecretTag
	keys     map[models.TagID][]models.WrappedKey
	sessions map[string]models.OpaqueSession
	counters map[string]*counter
	setup    string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		now:      time.Now,
		tags:     make(map[models.TagID]models.SecretTag),
		keys:     make(map[models.TagID][]models.WrappedKey),
		sessions: make(map[string]models.OpaqueSession),
		counters: make(map[string]*counter),
	}
}

func (m *memoryStore) CreateSecretTag(ctx context.Context, tag models.SecretTag, keys []models.WrappedKey, quota int) (models.SecretTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(keys) == 0 {
		return models.SecretTag{}, store.ErrNoWrappedKeys
	}

	count := 0
	for _, existing := range m.tags {
		if existing.UserID == tag.UserID {
			count++
			if existing.TagName == tag.TagName {
				return models.SecretTag{}, store.ErrDuplicateSecretTag
			}
		}
	}
	if count >= quota {
		return models.SecretTag{}, store.ErrQuotaExceeded
	}
	if _, ok := m.tags[tag.TagID]; ok {
		return models.SecretTag{}, store.ErrDuplicateSecretTag
	}

	now := m.now()
	tag.CreatedAt, tag.UpdatedAt = now, now
	m.tags[tag.TagID] = tag
	for _, key := range keys {
		key.CreatedAt = now
		m.keys[tag.TagID] = append(m.keys[tag.TagID], key)
	}
	return tag, nil
}

func (m *memoryStore) GetSecretTag(ctx context.Context, userID int64, tagID models.TagID) (models.SecretTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tag, ok := m.tags[tagID]
	if !ok || tag.UserID != userID {
		return models.SecretTag{}, store.ErrSecretTagNotFound
	}
	return tag, nil
}

func (m *memoryStore) ListSecretTags(ctx context.Context, userID int64) ([]models.SecretTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var tags []models.SecretTag
	for _, tag := range m.tags {
		if tag.UserID == userID {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].TagName < tags[j].TagName })
	return tags, nil
}

func (m *memoryStore) UpdateSecretTag(ctx context.Context, userID int64, tagID models.TagID, update models.SecretTagUpdate) (models.SecretTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tag, ok := m.tags[tagID]
	if !ok || tag.UserID != userID {
		return models.SecretTag{}, store.ErrSecretTagNotFound
	}
	if update.TagName != nil {
		for id, other := range m.tags {
			if id != tagID && other.UserID == userID && other.TagName == *update.TagName {
				return models.SecretTag{}, store.ErrDuplicateSecretTag
			}
		}
		tag.TagName = *update.TagName
	}
	if update.Color != nil {
		tag.Color = *update.Color
	}
	tag.UpdatedAt = m.now()
	m.tags[tagID] = tag
	return tag, nil
}

func (m *memoryStore) DeleteSecretTag(ctx context.Context, userID int64, tagID models.TagID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tag, ok := m.tags[tagID]
	if !ok || tag.UserID != userID {
		return store.ErrSecretTagNotFound
	}
	delete(m.tags, tagID)
	delete(m.keys, tagID)
	return nil
}

func (m *memoryStore) ListWrappedKeys(ctx context.Context, tagID models.TagID) ([]models.WrappedKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.WrappedKey(nil), m.keys[tagID]...), nil
}

func (m *memoryStore) CountSecretTags(ctx context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, tag := range m.tags {
		if tag.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *memoryStore) CreateSession(ctx context.Context, session models.OpaqueSession, ttl time.Duration) (models.OpaqueSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return models.OpaqueSession{}, err
	}
	session.SessionID = base64.RawURLEncoding.EncodeToString(raw)
	session.LastActivity = m.now()
	session.ExpiresAt = session.LastActivity.Add(ttl)
	m.sessions[session.SessionID] = session
	return session, nil
}

func (m *memoryStore) ClaimSession(ctx context.Context, sessionID string) (models.OpaqueSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return models.OpaqueSession{}, store.ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	if session.IsExpired(m.now()) {
		return session, store.ErrSessionExpired
	}
	return session, nil
}

func (m *memoryStore) SweepExpiredSessions(ctx context.Context, batchSize int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var swept int64
	for id, session := range m.sessions {
		if swept == int64(batchSize) {
			break
		}
		if session.IsExpired(m.now()) {
			delete(m.sessions, id)
			swept++
		}
	}
	return swept, nil
}

func (m *memoryStore) Attempts(ctx context.Context, ip, bucket string, window time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[ip+"|"+bucket]
	if !ok || m.now().After(c.expiresAt) {
		return 0, nil
	}
	return c.attempts, nil
}

func (m *memoryStore) IncrementAttempts(ctx context.Context, ip, bucket string, window time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ip + "|" + bucket
	c, ok := m.counters[key]
	if !ok || m.now().After(c.expiresAt) {
		c = &counter{expiresAt: m.now().Add(window)}
		m.counters[key] = c
	}
	c.attempts++
	return c.attempts, nil
}

func (m *memoryStore) DecrementAttempts(ctx context.Context, ip, bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.counters[ip+"|"+bucket]; ok && c.attempts > 0 {
		c.attempts--
	}
	return nil
}

func (m *memoryStore) ResetAttempts(ctx context.Context, ip, bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.counters, ip+"|"+bucket)
	return nil
}

func (m *memoryStore) SweepExpiredCounters(ctx context.Context, window time.Duration) (int64, error) {
	return 0, nil
}

func (m *memoryStore) GetServerSetup(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.setup == "" {
		return "", store.ErrServerSetupNotFound
	}
	return m.setup, nil
}

func (m *memoryStore) SaveServerSetup(ctx context.Context, encoded string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.setup == "" {
		m.setup = encoded
	}
	return m.setup, nil
}

func (m *memoryStore) wrappedKeyCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, keys := range m.keys {
		n += len(keys)
	}
	return n
}

func (m *memoryStore) sessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

func (m *memoryStore) storages() *store.Storages {
	return &store.Storages{
		SecretTagRepository:   m,
		SessionRepository:     m,
		RateLimitRepository:   m,
		ServerSetupRepository: m,
	}
}
