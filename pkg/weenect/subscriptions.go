package weenect

import (
	"context"

	"github.com/pkg/errors"

	"github.com/weenect-community/weenect-go/internal/types"
)

// subscriptionService implements the SubscriptionService interface
type subscriptionService struct {
	client *Client
}

// Offers retrieves the available subscription offers
func (s *subscriptionService) Offers(ctx context.Context) ([]interface{}, error) {
	resp, err := s.client.do(ctx, &types.Request{Path: "subscriptionoffer"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get subscription offers")
	}

	return toList(resp)
}

// Get retrieves a subscription by id
func (s *subscriptionService) Get(ctx context.Context, subscriptionID string) (map[string]interface{}, error) {
	resp, err := s.client.do(ctx, &types.Request{Path: "mysubscription/" + subscriptionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get subscription")
	}

	return toObject(resp)
}
