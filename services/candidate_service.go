package services

import (
	"context"
	"fmt"
	"math/rand"

	"amora_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CandidateProvider picks the next profile to show a browsing user: same
// orientation, never the requester, uniformly at random. Returns (nil, nil)
// when the pool is empty. Previously liked or disliked profiles may resurface;
// the browsing flow does not filter them out.
type CandidateProvider interface {
	Next(ctx context.Context, userID string) (*models.UserProfile, error)
}

// DynamoCandidateService implements CandidateProvider with a filtered scan of
// the UserProfiles table.
type DynamoCandidateService struct {
	Dynamo   *DynamoService
	Profiles ProfileStore
}

func (cs *DynamoCandidateService) Next(ctx context.Context, userID string) (*models.UserProfile, error) {
	requester, err := cs.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := cs.Dynamo.ScanItems(ctx, models.UserProfilesTable,
		"orientation = :orientation AND userId <> :self",
		map[string]types.AttributeValue{
			":orientation": &types.AttributeValueMemberS{Value: requester.Orientation},
			":self":        &types.AttributeValueMemberS{Value: userID},
		},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan candidate profiles: %w", err)
	}

	if len(items) == 0 {
		return nil, nil
	}

	var candidate models.UserProfile
	if err := attributevalue.UnmarshalMap(items[rand.Intn(len(items))], &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate profile: %w", err)
	}
	return &candidate, nil
}
