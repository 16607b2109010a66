package types

import "time"

const (
	// Version is the library version, used to build the default user agent.
	Version = "1.0.0"

	// DefaultBaseURL is the weenect API base URL.
	DefaultBaseURL = "https://apiv4.weenect.com"

	// APIVersion is the path prefix for every endpoint.
	APIVersion = "/v4"

	// AppURL is the weenect web application origin, sent with every request.
	AppURL = "https://my.weenect.com"

	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is the user agent string sent when none is configured.
	DefaultUserAgent = "weenect-go/" + Version
)

// Header values the weenect web application sends with every request.
const (
	AcceptHeader = "application/json, text/plain, */*"
	AppVersion   = "0.1.0"
	AppType      = "userspace"
)

// LoginEndpoint is the only unauthenticated endpoint.
const LoginEndpoint = "user/login"
