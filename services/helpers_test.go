package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"amora_server/models"

	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notifications per user for assertions.
type recordingNotifier struct {
	mu   sync.Mutex
	sent map[string][]string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(map[string][]string)}
}

func (n *recordingNotifier) Notify(userID, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent[userID] = append(n.sent[userID], text)
}

func (n *recordingNotifier) messages(userID string) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent[userID]...)
}

func (n *recordingNotifier) countContaining(userID, substring string) int {
	count := 0
	for _, text := range n.messages(userID) {
		if strings.Contains(text, substring) {
			count++
		}
	}
	return count
}

type testRig struct {
	profiles  *MemoryProfileStore
	ledger    *MemoryMatchLedger
	notifier  *recordingNotifier
	engine    *MatchEngine
	relay     *RelayService
	handshake *HandshakeService
}

func newTestRig(t *testing.T, userIDs ...string) *testRig {
	t.Helper()

	rig := &testRig{
		profiles: NewMemoryProfileStore(),
		ledger:   NewMemoryMatchLedger(),
		notifier: newRecordingNotifier(),
	}
	rig.relay = &RelayService{Profiles: rig.profiles, Ledger: rig.ledger, Notifier: rig.notifier}
	rig.engine = &MatchEngine{Ledger: rig.ledger, Relay: rig.relay}
	rig.handshake = &HandshakeService{Profiles: rig.profiles, Ledger: rig.ledger, Notifier: rig.notifier}

	for _, userID := range userIDs {
		err := rig.profiles.PutProfile(context.Background(), models.UserProfile{
			UserID:      userID,
			Orientation: "Гей",
			MediaRefs:   []string{"profile-media/" + userID + ".jpg"},
		})
		require.NoError(t, err)
	}
	return rig
}

// matchPair drives both users through mutual likes so a session is open.
func (rig *testRig) matchPair(t *testing.T, userA, userB string) {
	t.Helper()

	ctx := context.Background()
	outcome, err := rig.engine.RecordLike(ctx, userA, userB)
	require.NoError(t, err)
	require.Equal(t, models.OutcomePending, outcome)

	outcome, err = rig.engine.RecordLike(ctx, userB, userA)
	require.NoError(t, err)
	require.Equal(t, models.OutcomeNewMatch, outcome)
}

// exhaustPair spends both sides' full quota.
func (rig *testRig) exhaustPair(t *testing.T, userA, userB string) {
	t.Helper()

	ctx := context.Background()
	for i := 0; i < models.MessageQuota; i++ {
		result, err := rig.relay.RelayMessage(ctx, userA, "ping")
		require.NoError(t, err)
		require.Equal(t, models.RelayDelivered, result)

		result, err = rig.relay.RelayMessage(ctx, userB, "pong")
		require.NoError(t, err)
		require.Equal(t, models.RelayDelivered, result)
	}
}

func (rig *testRig) profile(t *testing.T, userID string) *models.UserProfile {
	t.Helper()

	profile, err := rig.profiles.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	return profile
}
