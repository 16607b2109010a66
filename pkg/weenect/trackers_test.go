package weenect

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/weenect-community/weenect-go/internal/types"
)

func TestTrackerService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport, "JWT abc")

	response := `[
		{"id": 100, "name": "Rex"},
		{"id": 101, "name": "Mittens"}
	]`

	mockTransport.On("Do", mock.Anything, mock.MatchedBy(func(req *types.Request) bool {
		return req.Path == "mytracker"
	})).Return(response, nil).Once()

	trackers, err := client.Trackers.List(context.Background())

	require.NoError(t, err)
	require.Len(t, trackers, 2)
	first := trackers[0].(map[string]interface{})
	assert.Equal(t, "Rex", first["name"])

	mockTransport.AssertExpectations(t)
}

func TestTrackerService_Position_ForwardsRange(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport, "JWT abc")

	mockTransport.On("Do", mock.Anything, mock.MatchedBy(func(req *types.Request) bool {
		return req.Path == "mytracker/100/position" &&
			req.Query.Get("start") == "2021-01-01T00:00:00" &&
			req.Query.Get("end") == "2021-01-02T00:00:00"
	})).Return(`[{"latitude": 48.1, "longitude": 11.5}]`, nil).Once()

	positions, err := client.Trackers.Position(context.Background(), "100", "2021-01-01T00:00:00", "2021-01-02T00:00:00")

	require.NoError(t, err)
	require.Len(t, positions, 1)

	mockTransport.AssertExpectations(t)
}

func TestTrackerService_Position_NoRange(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport, "JWT abc")

	mockTransport.On("Do", mock.Anything, mock.MatchedBy(func(req *types.Request) bool {
		return req.Path == "mytracker/100/position" && req.Query == nil
	})).Return(`[]`, nil).Once()

	_, err := client.Trackers.Position(context.Background(), "100", "", "")

	require.NoError(t, err)
	mockTransport.AssertExpectations(t)
}

func TestTrackerService_Activity_ForwardsRange(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport, "JWT abc")

	mockTransport.On("Do", mock.Anything, mock.MatchedBy(func(req *types.Request) bool {
		return req.Path == "mytracker/100/activity" &&
			req.Query.Get("start") == "2021-01-01T00:00:00" &&
			req.Query.Get("end") == ""
	})).Return(`[]`, nil).Once()

	_, err := client.Trackers.Activity(context.Background(), "100", "2021-01-01T00:00:00", "")

	require.NoError(t, err)
	mockTransport.AssertExpectations(t)
}

func TestTrackerService_SetUpdateInterval(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport, "JWT abc")

	mockTransport.On("Do", mock.Anything, mock.MatchedBy(func(req *types.Request) bool {
		body, ok := req.JSON.(map[string]string)
		return req.Method == http.MethodPost &&
			req.Path == "mytracker/100/mode" &&
			ok && body["mode"] == "30M"
	})).Return(nil, nil).Once()

	err := client.Trackers.SetUpdateInterval(context.Background(), "100", "30M")

	require.NoError(t, err)
	mockTransport.AssertExpectations(t)
}

func TestTrackerService_Commands(t *testing.T) {
	commands := []struct {
		name string
		path string
		call func(ctx context.Context, s TrackerService) error
	}{
		{"super live", "mytracker/100/st-mode", func(ctx context.Context, s TrackerService) error {
			return s.ActivateSuperLive(ctx, "100")
		}},
		{"refresh location", "mytracker/100/position/refresh", func(ctx context.Context, s TrackerService) error {
			return s.RefreshLocation(ctx, "100")
		}},
		{"vibrate", "mytracker/100/vibrate", func(ctx context.Context, s TrackerService) error {
			return s.Vibrate(ctx, "100")
		}},
		{"ring", "mytracker/100/ring", func(ctx context.Context, s TrackerService) error {
			return s.Ring(ctx, "100")
		}},
	}

	for _, tc := range commands {
		t.Run(tc.name, func(t *testing.T) {
			mockTransport := new(MockTransport)
			client := newTestClient(mockTransport, "JWT abc")

			// The API answers these with 204 No Content.
			mockTransport.On("Do", mock.Anything, mock.MatchedBy(func(req *types.Request) bool {
				return req.Method == http.MethodPost && req.Path == tc.path && req.JSON == nil
			})).Return(nil, nil).Once()

			err := tc.call(context.Background(), client.Trackers)

			require.NoError(t, err)
			mockTransport.AssertExpectations(t)
		})
	}
}

func TestTrackerService_List_APIError(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport, "JWT abc")

	apiErr := &Error{
		StatusCode: http.StatusNotFound,
		Body:       map[string]interface{}{"message": "not found"},
	}
	mockTransport.On("Do", mock.Anything, mock.Anything).Return(nil, apiErr).Once()

	_, err := client.Trackers.List(context.Background())

	require.Error(t, err)
	got, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, got.StatusCode)
	assert.Equal(t, map[string]interface{}{"message": "not found"}, got.Body)
}
