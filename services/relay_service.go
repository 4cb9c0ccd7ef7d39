package services

import (
	"context"
	"errors"
	"fmt"

	"amora_server/models"
	"amora_server/utils"
)

// RelayService runs the anonymous messaging channel between two matched users:
// session activation, the per-sender message quota, and detection of the
// moment both sides have spent their quota.
type RelayService struct {
	Profiles ProfileStore
	Ledger   MatchLedger
	Notifier Notifier
	Quota    int // per-sender messages per session; 0 means models.MessageQuota
}

func (r *RelayService) quota() int {
	if r.Quota > 0 {
		return r.Quota
	}
	return models.MessageQuota
}

// OpenSession transitions a freshly activated match into an open anonymous
// session: both profiles point at each other with zeroed counters, and both
// users are told the channel is open.
func (r *RelayService) OpenSession(ctx context.Context, userA, userB string) error {
	if err := r.Profiles.OpenSessions(ctx, userA, userB); err != nil {
		return fmt.Errorf("failed to open session for %s and %s: %w", userA, userB, err)
	}

	text := fmt.Sprintf("🎉 It's a match! You can chat anonymously now (%d messages each).", r.quota())
	r.Notifier.Notify(userA, text)
	r.Notifier.Notify(userB, text)
	return nil
}

// RelayMessage forwards content from sender to their matched counterpart,
// charging the sender's quota. Returns models.RelayDelivered or
// models.RelayQuotaExhausted; a sender without an open session gets
// ErrInvalidTransition.
func (r *RelayService) RelayMessage(ctx context.Context, sender, content string) (string, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		profile, err := r.Profiles.GetProfile(ctx, sender)
		if err != nil {
			return "", err
		}
		if profile.ActiveMatch == "" {
			return "", fmt.Errorf("%w: no active match for %s", ErrInvalidTransition, sender)
		}
		if profile.MessageCount >= r.quota() {
			r.Notifier.Notify(sender, "🚫 Your message quota for this chat is spent.")
			return models.RelayQuotaExhausted, nil
		}

		counterpart := profile.ActiveMatch
		newCount, err := r.Profiles.IncrementMessageCount(ctx, sender, r.quota())
		if errors.Is(err, ErrConflict) {
			// Counter hit the limit or the session closed since the read;
			// re-read to find out which.
			continue
		}
		if err != nil {
			return "", err
		}

		remaining := r.quota() - newCount
		r.Notifier.Notify(counterpart, fmt.Sprintf("💬 Anonymous message (%d remaining):\n%s", remaining, content))

		if newCount >= r.quota() {
			if err := r.checkDualExhaustion(ctx, sender, counterpart); err != nil {
				return "", err
			}
		}
		return models.RelayDelivered, nil
	}

	return "", ErrConflict
}

// checkDualExhaustion reads the counterpart's current persisted count and, when
// both sides are spent, offers the contact exchange to both users exactly once.
func (r *RelayService) checkDualExhaustion(ctx context.Context, sender, counterpart string) error {
	// Fresh read: the counterpart may have been sending concurrently.
	counterpartProfile, err := r.Profiles.GetProfile(ctx, counterpart)
	if err != nil {
		return err
	}
	if counterpartProfile.MessageCount < r.quota() || counterpartProfile.ActiveMatch != sender {
		return nil
	}

	offered, err := r.Ledger.MarkContactOffered(ctx, utils.PairKey(sender, counterpart))
	if err != nil {
		return err
	}
	if !offered {
		// The other side's last message already triggered the offer.
		return nil
	}

	text := "🤝 Looks like you two are ready to exchange contacts!"
	r.Notifier.Notify(sender, text)
	r.Notifier.Notify(counterpart, text)
	return nil
}
