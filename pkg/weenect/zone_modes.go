package weenect

// ZoneNotificationMode selects which zone boundary crossings trigger a
// notification. The integer values are serialized verbatim into
// zone-creation payloads and must not change.
type ZoneNotificationMode int

const (
	// ZoneModeNone disables zone notifications.
	ZoneModeNone ZoneNotificationMode = 0

	// ZoneModeEnterOnly notifies when the tracker enters the zone.
	ZoneModeEnterOnly ZoneNotificationMode = 1

	// ZoneModeExitOnly notifies when the tracker leaves the zone.
	ZoneModeExitOnly ZoneNotificationMode = 2

	// ZoneModeEnterAndExit notifies on both enter and exit.
	ZoneModeEnterAndExit ZoneNotificationMode = 3
)

func (m ZoneNotificationMode) String() string {
	switch m {
	case ZoneModeNone:
		return "none"
	case ZoneModeEnterOnly:
		return "enter_only"
	case ZoneModeExitOnly:
		return "exit_only"
	case ZoneModeEnterAndExit:
		return "enter_and_exit"
	default:
		return "unknown"
	}
}
