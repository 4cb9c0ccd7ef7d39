package models

// MatchRecord is the canonical record of like/dislike interaction between an
// unordered pair of users. UserA is always the lexicographically lower userId,
// so exactly one record can exist per pair.
type MatchRecord struct {
	PairKey        string `dynamodbav:"pairKey" json:"pairKey"` // ✅ Partition Key: "<userA>#<userB>"
	MatchID        string `dynamodbav:"matchId" json:"matchId"`
	UserA          string `dynamodbav:"userA" json:"userA"`
	UserB          string `dynamodbav:"userB" json:"userB"`
	LikedByA       bool   `dynamodbav:"likedByA" json:"likedByA"`
	LikedByB       bool   `dynamodbav:"likedByB" json:"likedByB"`
	ChatActive     bool   `dynamodbav:"chatActive" json:"chatActive"`         // true iff both sides liked; never reverts
	ContactOffered bool   `dynamodbav:"contactOffered" json:"contactOffered"` // set once when both quotas are spent
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for match records
const MatchesTable = "Matches"

// Counterpart returns the other member of the pair.
func (m *MatchRecord) Counterpart(userID string) string {
	if userID == m.UserA {
		return m.UserB
	}
	return m.UserA
}

// Liked reports whether the given user has liked their counterpart.
func (m *MatchRecord) Liked(userID string) bool {
	if userID == m.UserA {
		return m.LikedByA
	}
	return m.LikedByB
}
