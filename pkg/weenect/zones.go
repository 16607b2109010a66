package weenect

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/weenect-community/weenect-go/internal/types"
)

// AddZoneParams for creating geofence zones. Pointer fields fall back
// to the weenect defaults when nil.
type AddZoneParams struct {
	// Address of the zone center
	Address string

	// Latitude of the zone center
	Latitude float64

	// Longitude of the zone center
	Longitude float64

	// Name of the zone
	Name string

	// Active toggles the zone (default true)
	Active *bool

	// Distance is the zone radius in meters (default 100)
	Distance *int

	// IsOutside marks the zone as outside, which increases enter/exit
	// detection precision (default false)
	IsOutside *bool

	// Mode selects the notification mode (default ZoneModeEnterAndExit)
	Mode *ZoneNotificationMode
}

// zoneService implements the ZoneService interface
type zoneService struct {
	client *Client
}

// List retrieves all zones for a tracker
func (s *zoneService) List(ctx context.Context, trackerID string) (map[string]interface{}, error) {
	resp, err := s.client.do(ctx, &types.Request{Path: "mytracker/" + trackerID + "/zones"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get zones")
	}

	return toObject(resp)
}

// Add creates a zone for a tracker and returns the created zone.
func (s *zoneService) Add(ctx context.Context, trackerID string, params *AddZoneParams) (map[string]interface{}, error) {
	if params == nil {
		return nil, errors.New("zone params are required")
	}

	active := true
	if params.Active != nil {
		active = *params.Active
	}
	distance := 100
	if params.Distance != nil {
		distance = *params.Distance
	}
	isOutside := false
	if params.IsOutside != nil {
		isOutside = *params.IsOutside
	}
	mode := ZoneModeEnterAndExit
	if params.Mode != nil {
		mode = *params.Mode
	}

	body := map[string]interface{}{
		"active":     active,
		"address":    params.Address,
		"distance":   distance,
		"is_outside": isOutside,
		"latitude":   params.Latitude,
		"longitude":  params.Longitude,
		"mode":       int(mode),
		"name":       params.Name,
	}

	resp, err := s.client.do(ctx, &types.Request{
		Method: http.MethodPost,
		Path:   "mytracker/" + trackerID + "/zones",
		JSON:   body,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add zone")
	}

	return toObject(resp)
}

// Remove deletes a zone from a tracker
func (s *zoneService) Remove(ctx context.Context, trackerID, zoneID string) error {
	_, err := s.client.do(ctx, &types.Request{
		Method: http.MethodDelete,
		Path:   "mytracker/" + trackerID + "/zones/" + zoneID,
	})
	return errors.Wrap(err, "failed to remove zone")
}
