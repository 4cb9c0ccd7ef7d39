package services

import (
	"context"
	"errors"
	"fmt"

	"amora_server/models"
)

// HandshakeService resolves an exhausted anonymous session: each side
// independently accepts or declines revealing their identity. Resolution is
// per user; the counterpart stays attached to the session until they decide
// (or cancel) themselves.
type HandshakeService struct {
	Profiles ProfileStore
	Ledger   MatchLedger
	Notifier Notifier
}

// Decide records the user's answer to the contact exchange offer. Accepting
// reveals the deciding user's handle to the counterpart; either way the
// deciding user's own session state is cleared.
func (h *HandshakeService) Decide(ctx context.Context, userID string, accept bool) error {
	profile, counterpart, err := h.sessionFor(ctx, userID)
	if err != nil {
		return err
	}

	record, err := h.Ledger.Find(ctx, userID, counterpart)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: no match record for %s", ErrInvalidTransition, userID)
	}
	if err != nil {
		return err
	}
	if !record.ContactOffered {
		return fmt.Errorf("%w: contact exchange has not been offered yet", ErrInvalidTransition)
	}

	if accept {
		h.Notifier.Notify(counterpart, fmt.Sprintf("📲 Your match agreed to share their contact: %s", h.handleFor(profile)))
	} else {
		h.Notifier.Notify(counterpart, "❌ Your match declined to share their contact. Good luck out there!")
	}

	return h.Profiles.CloseSession(ctx, userID)
}

// Cancel lets a user abandon their side of an open session at any point. This
// is the escape hatch for a session whose counterpart never decides: it only
// clears the cancelling user's own state, mirroring Decide's per-user reset.
func (h *HandshakeService) Cancel(ctx context.Context, userID string) error {
	_, counterpart, err := h.sessionFor(ctx, userID)
	if err != nil {
		return err
	}

	h.Notifier.Notify(counterpart, "👋 Your match has left the chat.")
	return h.Profiles.CloseSession(ctx, userID)
}

func (h *HandshakeService) sessionFor(ctx context.Context, userID string) (*models.UserProfile, string, error) {
	profile, err := h.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if profile.ActiveMatch == "" {
		return nil, "", fmt.Errorf("%w: no active match for %s", ErrInvalidTransition, userID)
	}
	return profile, profile.ActiveMatch, nil
}

// handleFor picks the identifier revealed on acceptance. The stable userId is
// the public handle; the display name is attached when the user set one.
func (h *HandshakeService) handleFor(profile *models.UserProfile) string {
	if profile.Name != "" {
		return fmt.Sprintf("%s (@%s)", profile.Name, profile.UserID)
	}
	return "@" + profile.UserID
}
