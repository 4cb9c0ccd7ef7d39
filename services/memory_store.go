package services

import (
	"context"
	"math/rand"
	"sync"

	"amora_server/models"
	"amora_server/utils"
)

// MemoryProfileStore is a mutex-serialized in-process ProfileStore. It backs
// local development runs without AWS credentials and the service tests; every
// operation has the same atomicity semantics as the DynamoDB implementation.
type MemoryProfileStore struct {
	mu       sync.Mutex
	profiles map[string]models.UserProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]models.UserProfile)}
}

func (ps *MemoryProfileStore) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	profile, ok := ps.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := profile
	return &copied, nil
}

func (ps *MemoryProfileStore) PutProfile(ctx context.Context, profile models.UserProfile) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.profiles[profile.UserID] = profile
	return nil
}

func (ps *MemoryProfileStore) OpenSessions(ctx context.Context, userA, userB string) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	a, okA := ps.profiles[userA]
	b, okB := ps.profiles[userB]
	if !okA || !okB {
		return ErrConflict
	}

	a.ActiveMatch, a.MessageCount = userB, 0
	b.ActiveMatch, b.MessageCount = userA, 0
	ps.profiles[userA] = a
	ps.profiles[userB] = b
	return nil
}

func (ps *MemoryProfileStore) CloseSession(ctx context.Context, userID string) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	profile, ok := ps.profiles[userID]
	if !ok {
		return ErrNotFound
	}
	profile.ActiveMatch, profile.MessageCount = "", 0
	ps.profiles[userID] = profile
	return nil
}

func (ps *MemoryProfileStore) IncrementMessageCount(ctx context.Context, userID string, limit int) (int, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	profile, ok := ps.profiles[userID]
	if !ok || profile.ActiveMatch == "" || profile.MessageCount >= limit {
		return 0, ErrConflict
	}
	profile.MessageCount++
	ps.profiles[userID] = profile
	return profile.MessageCount, nil
}

// Next implements CandidateProvider over the in-memory profile set.
func (ps *MemoryProfileStore) Next(ctx context.Context, userID string) (*models.UserProfile, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	requester, ok := ps.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}

	var pool []models.UserProfile
	for id, profile := range ps.profiles {
		if id != userID && profile.Orientation == requester.Orientation {
			pool = append(pool, profile)
		}
	}
	if len(pool) == 0 {
		return nil, nil
	}
	candidate := pool[rand.Intn(len(pool))]
	return &candidate, nil
}

// MemoryMatchLedger is the in-process MatchLedger counterpart to
// MemoryProfileStore.
type MemoryMatchLedger struct {
	mu      sync.Mutex
	records map[string]models.MatchRecord
}

func NewMemoryMatchLedger() *MemoryMatchLedger {
	return &MemoryMatchLedger{records: make(map[string]models.MatchRecord)}
}

func (ml *MemoryMatchLedger) Find(ctx context.Context, userA, userB string) (*models.MatchRecord, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	record, ok := ml.records[utils.PairKey(userA, userB)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := record
	return &copied, nil
}

func (ml *MemoryMatchLedger) Create(ctx context.Context, record *models.MatchRecord) error {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if _, ok := ml.records[record.PairKey]; ok {
		return ErrAlreadyExists
	}
	ml.records[record.PairKey] = *record
	return nil
}

func (ml *MemoryMatchLedger) SetLiked(ctx context.Context, pairKey, userID string) (*models.MatchRecord, bool, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	record, ok := ml.records[pairKey]
	if !ok {
		return nil, false, ErrNotFound
	}
	wasActive := record.ChatActive
	if userID == record.UserA {
		record.LikedByA = true
	} else {
		record.LikedByB = true
	}
	record.ChatActive = record.LikedByA && record.LikedByB
	ml.records[pairKey] = record
	copied := record
	return &copied, record.ChatActive && !wasActive, nil
}

func (ml *MemoryMatchLedger) MarkContactOffered(ctx context.Context, pairKey string) (bool, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	record, ok := ml.records[pairKey]
	if !ok || !record.ChatActive || record.ContactOffered {
		return false, nil
	}
	record.ContactOffered = true
	ml.records[pairKey] = record
	return true, nil
}
