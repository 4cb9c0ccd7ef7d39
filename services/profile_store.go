package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amora_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProfileStore is the persistence contract for user profiles. Session fields
// (activeMatch, messageCount) are only ever mutated through the dedicated
// operations below so that every mutation is atomic on the profile row.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	PutProfile(ctx context.Context, profile models.UserProfile) error

	// OpenSessions points both profiles at each other and resets both message
	// counters in a single atomic step. A new session always starts at count 0
	// regardless of any prior session.
	OpenSessions(ctx context.Context, userA, userB string) error

	// CloseSession clears the user's own session state. The counterpart's
	// session is untouched; resolution is per user.
	CloseSession(ctx context.Context, userID string) error

	// IncrementMessageCount atomically bumps the user's counter and returns the
	// new value. It fails with ErrConflict when the session is gone or the
	// counter already reached limit at write time.
	IncrementMessageCount(ctx context.Context, userID string, limit int) (int, error)
}

// DynamoProfileStore implements ProfileStore on the UserProfiles table.
type DynamoProfileStore struct {
	Dynamo *DynamoService
}

func (ps *DynamoProfileStore) profileKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}

// GetProfile retrieves a user profile by ID
func (ps *DynamoProfileStore) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	item, err := ps.Dynamo.GetItem(ctx, models.UserProfilesTable, ps.profileKey(userID))
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// PutProfile stores a profile record, replacing any previous version. Session
// fields are not part of onboarding and start zeroed.
func (ps *DynamoProfileStore) PutProfile(ctx context.Context, profile models.UserProfile) error {
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return ps.Dynamo.PutItem(ctx, models.UserProfilesTable, profile)
}

func (ps *DynamoProfileStore) OpenSessions(ctx context.Context, userA, userB string) error {
	openFor := func(userID, partnerID string) TransactUpdate {
		return TransactUpdate{
			TableName:           models.UserProfilesTable,
			Key:                 ps.profileKey(userID),
			UpdateExpression:    "SET activeMatch = :partner, messageCount = :zero",
			ConditionExpression: "attribute_exists(userId)",
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":partner": &types.AttributeValueMemberS{Value: partnerID},
				":zero":    &types.AttributeValueMemberN{Value: "0"},
			},
		}
	}

	// Both sides flip in one transaction so a store failure can never leave
	// one profile attached to a session the other does not have.
	return ps.Dynamo.TransactWriteUpdates(ctx, openFor(userA, userB), openFor(userB, userA))
}

func (ps *DynamoProfileStore) CloseSession(ctx context.Context, userID string) error {
	_, err := ps.Dynamo.UpdateItemWithCondition(ctx, models.UserProfilesTable,
		"REMOVE activeMatch SET messageCount = :zero",
		"attribute_exists(userId)",
		ps.profileKey(userID),
		map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
		nil,
	)
	if errors.Is(err, ErrConflict) {
		return ErrNotFound
	}
	return err
}

func (ps *DynamoProfileStore) IncrementMessageCount(ctx context.Context, userID string, limit int) (int, error) {
	attrs, err := ps.Dynamo.UpdateItemWithCondition(ctx, models.UserProfilesTable,
		"SET messageCount = messageCount + :one",
		"attribute_exists(activeMatch) AND messageCount < :limit",
		ps.profileKey(userID),
		map[string]types.AttributeValue{
			":one":   &types.AttributeValueMemberN{Value: "1"},
			":limit": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", limit)},
		},
		nil,
	)
	if err != nil {
		return 0, err
	}

	var updated models.UserProfile
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return 0, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return updated.MessageCount, nil
}
