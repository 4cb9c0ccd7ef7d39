package models

// UserProfile defines the persisted profile record for a user
type UserProfile struct {
	UserID       string   `dynamodbav:"userId" json:"userId"` // ✅ Partition Key
	Name         string   `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Age          int      `dynamodbav:"age,omitempty" json:"age,omitempty"`
	Orientation  string   `dynamodbav:"orientation,omitempty" json:"orientation,omitempty"`
	Role         string   `dynamodbav:"role,omitempty" json:"role,omitempty"`
	Location     string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Bio          string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	MediaRefs    []string `dynamodbav:"mediaRefs,omitempty" json:"mediaRefs,omitempty"` // 1-3 S3 object keys (photos or short video)
	ActiveMatch  string   `dynamodbav:"activeMatch,omitempty" json:"activeMatch,omitempty"` // counterpart userId while an anonymous session is open
	MessageCount int      `dynamodbav:"messageCount" json:"messageCount"`                   // messages sent within the current session
	CreatedAt    string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
