package weenect

import "context"

// UserService handles user operations
type UserService interface {
	// Get retrieves the user with the given id, or the authenticated
	// user when userID is empty.
	Get(ctx context.Context, userID string) (map[string]interface{}, error)
}

// SubscriptionService handles subscription operations
type SubscriptionService interface {
	// Offers retrieves the available subscription offers
	Offers(ctx context.Context) ([]interface{}, error)

	// Get retrieves a subscription by id
	Get(ctx context.Context, subscriptionID string) (map[string]interface{}, error)
}

// TrackerService handles tracker operations
type TrackerService interface {
	// List retrieves all available trackers
	List(ctx context.Context) ([]interface{}, error)

	// Position retrieves position data for a tracker. start and end
	// limit the range when non-empty.
	Position(ctx context.Context, trackerID, start, end string) ([]interface{}, error)

	// Activity retrieves activity data for a tracker. end limits the
	// range when non-empty.
	Activity(ctx context.Context, trackerID, start, end string) ([]interface{}, error)

	// SetUpdateInterval sets the position update interval
	SetUpdateInterval(ctx context.Context, trackerID, interval string) error

	// ActivateSuperLive activates the super live mode
	ActivateSuperLive(ctx context.Context, trackerID string) error

	// RefreshLocation requests a position refresh
	RefreshLocation(ctx context.Context, trackerID string) error

	// Vibrate sends a vibration command to the tracker
	Vibrate(ctx context.Context, trackerID string) error

	// Ring sends a ring command to the tracker
	Ring(ctx context.Context, trackerID string) error
}

// ZoneService handles geofence zone operations
type ZoneService interface {
	// List retrieves all zones for a tracker
	List(ctx context.Context, trackerID string) (map[string]interface{}, error)

	// Add creates a zone for a tracker
	Add(ctx context.Context, trackerID string, params *AddZoneParams) (map[string]interface{}, error)

	// Remove deletes a zone from a tracker
	Remove(ctx context.Context, trackerID, zoneID string) error
}
