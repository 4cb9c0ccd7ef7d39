package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"amora_server/models"
	"amora_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MatchLedger is the persistence contract for match records. The record for a
// pair is keyed by the canonical pair key, so at most one record can exist per
// unordered pair no matter which side writes first.
type MatchLedger interface {
	// Find returns the record for the unordered pair, or ErrNotFound.
	Find(ctx context.Context, userA, userB string) (*models.MatchRecord, error)

	// Create inserts a new record. ErrAlreadyExists when the pair already has one.
	Create(ctx context.Context, record *models.MatchRecord) error

	// SetLiked atomically sets the liked flag for the given user's side and
	// recomputes chatActive in the same write, so the record invariant
	// chatActive == (likedByA && likedByB) holds after every update. Setting an
	// already-true flag is a no-op. The returned activated flag is true only
	// for the single call whose write transitioned chatActive false→true.
	SetLiked(ctx context.Context, pairKey, userID string) (record *models.MatchRecord, activated bool, err error)

	// MarkContactOffered flips contactOffered false→true on an active match.
	// Returns true only for the single caller that performed the transition.
	MarkContactOffered(ctx context.Context, pairKey string) (bool, error)
}

// NewMatchRecord builds the record for a first like from liker towards liked.
func NewMatchRecord(liker, liked string) *models.MatchRecord {
	userA, userB := utils.SortPair(liker, liked)
	record := &models.MatchRecord{
		PairKey:   utils.PairKey(liker, liked),
		MatchID:   uuid.NewString(),
		UserA:     userA,
		UserB:     userB,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if liker == userA {
		record.LikedByA = true
	} else {
		record.LikedByB = true
	}
	return record
}

// DynamoMatchLedger implements MatchLedger on the Matches table.
type DynamoMatchLedger struct {
	Dynamo *DynamoService
}

func (ml *DynamoMatchLedger) matchKey(pairKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: pairKey},
	}
}

func (ml *DynamoMatchLedger) Find(ctx context.Context, userA, userB string) (*models.MatchRecord, error) {
	item, err := ml.Dynamo.GetItem(ctx, models.MatchesTable, ml.matchKey(utils.PairKey(userA, userB)))
	if err != nil {
		return nil, err
	}

	var record models.MatchRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match record: %w", err)
	}
	return &record, nil
}

func (ml *DynamoMatchLedger) Create(ctx context.Context, record *models.MatchRecord) error {
	return ml.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, "pairKey", record)
}

func (ml *DynamoMatchLedger) SetLiked(ctx context.Context, pairKey, userID string) (*models.MatchRecord, bool, error) {
	// Which flag to set depends on which side of the sorted pair the user is.
	userA, _, found := strings.Cut(pairKey, "#")
	if !found {
		return nil, false, fmt.Errorf("malformed pair key: %q", pairKey)
	}
	flag, otherFlag := "likedByB", "likedByA"
	if userID == userA {
		flag, otherFlag = otherFlag, flag
	}

	// chatActive is recomputed inside the same write: with this side's flag
	// forced true it equals the other side's flag. DynamoDB serializes the two
	// sides' updates on the row, so exactly one write observes the transition.
	attrs, err := ml.Dynamo.UpdateItemWithConditionOld(ctx, models.MatchesTable,
		fmt.Sprintf("SET %s = :true, chatActive = %s", flag, otherFlag),
		"attribute_exists(pairKey)",
		ml.matchKey(pairKey),
		map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
		nil,
	)
	if errors.Is(err, ErrConflict) {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}

	var previous models.MatchRecord
	if err := attributevalue.UnmarshalMap(attrs, &previous); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal match record: %w", err)
	}

	updated := previous
	updated.LikedByA = previous.LikedByA || userID == updated.UserA
	updated.LikedByB = previous.LikedByB || userID == updated.UserB
	updated.ChatActive = updated.LikedByA && updated.LikedByB
	activated := updated.ChatActive && !previous.ChatActive
	return &updated, activated, nil
}

// MarkContactOffered performs a guarded false→true transition. The condition
// failing means another caller already made the transition, which is not an
// error.
func (ml *DynamoMatchLedger) MarkContactOffered(ctx context.Context, pairKey string) (bool, error) {
	_, err := ml.Dynamo.UpdateItemWithCondition(ctx, models.MatchesTable,
		"SET contactOffered = :true",
		"chatActive = :true AND contactOffered = :false",
		ml.matchKey(pairKey),
		map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
		nil,
	)
	if errors.Is(err, ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
