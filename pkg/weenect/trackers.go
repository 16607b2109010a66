package weenect

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/weenect-community/weenect-go/internal/types"
)

// trackerService implements the TrackerService interface
type trackerService struct {
	client *Client
}

// List retrieves all available trackers
func (s *trackerService) List(ctx context.Context) ([]interface{}, error) {
	resp, err := s.client.do(ctx, &types.Request{Path: "mytracker"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get trackers")
	}

	return toList(resp)
}

// Position retrieves position data for a tracker, limited to the
// start/end timestamp range when non-empty.
func (s *trackerService) Position(ctx context.Context, trackerID, start, end string) ([]interface{}, error) {
	resp, err := s.client.do(ctx, &types.Request{
		Path:  "mytracker/" + trackerID + "/position",
		Query: rangeQuery(start, end),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get position data")
	}

	return toList(resp)
}

// Activity retrieves activity data for a tracker, limited to the
// start/end timestamp range when non-empty.
func (s *trackerService) Activity(ctx context.Context, trackerID, start, end string) ([]interface{}, error) {
	resp, err := s.client.do(ctx, &types.Request{
		Path:  "mytracker/" + trackerID + "/activity",
		Query: rangeQuery(start, end),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get activity data")
	}

	return toList(resp)
}

// SetUpdateInterval sets the position update interval
func (s *trackerService) SetUpdateInterval(ctx context.Context, trackerID, interval string) error {
	_, err := s.client.do(ctx, &types.Request{
		Method: http.MethodPost,
		Path:   "mytracker/" + trackerID + "/mode",
		JSON:   map[string]string{"mode": interval},
	})
	return errors.Wrap(err, "failed to set update interval")
}

// ActivateSuperLive activates the super live mode
func (s *trackerService) ActivateSuperLive(ctx context.Context, trackerID string) error {
	_, err := s.client.do(ctx, &types.Request{
		Method: http.MethodPost,
		Path:   "mytracker/" + trackerID + "/st-mode",
	})
	return errors.Wrap(err, "failed to activate super live mode")
}

// RefreshLocation requests a position refresh
func (s *trackerService) RefreshLocation(ctx context.Context, trackerID string) error {
	_, err := s.client.do(ctx, &types.Request{
		Method: http.MethodPost,
		Path:   "mytracker/" + trackerID + "/position/refresh",
	})
	return errors.Wrap(err, "failed to refresh location")
}

// Vibrate sends a vibration command to the tracker
func (s *trackerService) Vibrate(ctx context.Context, trackerID string) error {
	_, err := s.client.do(ctx, &types.Request{
		Method: http.MethodPost,
		Path:   "mytracker/" + trackerID + "/vibrate",
	})
	return errors.Wrap(err, "failed to send vibrate command")
}

// Ring sends a ring command to the tracker
func (s *trackerService) Ring(ctx context.Context, trackerID string) error {
	_, err := s.client.do(ctx, &types.Request{
		Method: http.MethodPost,
		Path:   "mytracker/" + trackerID + "/ring",
	})
	return errors.Wrap(err, "failed to send ring command")
}

// rangeQuery builds the start/end query parameters, omitting empty
// values.
func rangeQuery(start, end string) url.Values {
	query := url.Values{}
	if start != "" {
		query.Set("start", start)
	}
	if end != "" {
		query.Set("end", end)
	}
	if len(query) == 0 {
		return nil
	}
	return query
}
