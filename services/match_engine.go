package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"amora_server/models"
)

// MatchEngine records like actions against the match ledger and activates the
// anonymous chat session when a like completes a mutual pair.
type MatchEngine struct {
	Ledger MatchLedger
	Relay  *RelayService
}

// RecordLike registers that liker liked liked and returns the resulting
// outcome. The first like of a pair creates the record; a like that completes
// the mutual condition activates the chat exactly once, no matter how the two
// sides' calls interleave. Re-liking is idempotent.
func (e *MatchEngine) RecordLike(ctx context.Context, liker, liked string) (string, error) {
	if liker == liked {
		return "", fmt.Errorf("%w: a user cannot like themselves", ErrInvalidTransition)
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		record, err := e.Ledger.Find(ctx, liker, liked)
		if errors.Is(err, ErrNotFound) {
			record = NewMatchRecord(liker, liked)
			err = e.Ledger.Create(ctx, record)
			if errors.Is(err, ErrAlreadyExists) {
				// Lost the race against the counterpart's first like; take the
				// update path against their record.
				continue
			}
			if err != nil {
				return "", fmt.Errorf("failed to create match record: %w", err)
			}
			return models.OutcomePending, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to look up match record: %w", err)
		}

		updated, activated, err := e.Ledger.SetLiked(ctx, record.PairKey, liker)
		if err != nil {
			return "", fmt.Errorf("failed to record like: %w", err)
		}
		// The write that flipped chatActive false→true owns the activation;
		// the losing side of a concurrent mutual like stays pending.
		if !activated {
			return models.OutcomePending, nil
		}

		log.Printf("🎉 New match: %s and %s", updated.UserA, updated.UserB)
		if err := e.Relay.OpenSession(ctx, updated.UserA, updated.UserB); err != nil {
			return "", err
		}
		return models.OutcomeNewMatch, nil
	}

	return "", ErrConflict
}
