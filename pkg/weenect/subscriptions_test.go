package weenect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/weenect-community/weenect-go/internal/types"
)

func TestSubscriptionService_Offers(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport, "JWT abc")

	response := `[
		{"id": "offer-1", "name": "Monthly"},
		{"id": "offer-2", "name": "Yearly"}
	]`

	mockTransport.On("Do", mock.Anything, mock.MatchedBy(func(req *types.Request) bool {
		return req.Path == "subscriptionoffer"
	})).Return(response, nil).Once()

	offers, err := client.Subscriptions.Offers(context.Background())

	require.NoError(t, err)
	require.Len(t, offers, 2)
	first := offers[0].(map[string]interface{})
	assert.Equal(t, "Monthly", first["name"])

	mockTransport.AssertExpectations(t)
}

func TestSubscriptionService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport, "JWT abc")

	mockTransport.On("Do", mock.Anything, mock.MatchedBy(func(req *types.Request) bool {
		return req.Path == "mysubscription/sub-42"
	})).Return(`{"id": "sub-42", "status": "active"}`, nil).Once()

	sub, err := client.Subscriptions.Get(context.Background(), "sub-42")

	require.NoError(t, err)
	assert.Equal(t, "active", sub["status"])

	mockTransport.AssertExpectations(t)
}
