// Package transport implements the HTTP primitive behind the weenect
// client: URL construction, the default header set, bearer attachment,
// timeout classification and response decoding.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/weenect-community/weenect-go/internal/types"
)

const (
	authHeaderKey = "Authorization"
	contentType   = "application/json"
)

// RESTTransport handles communication with the weenect REST API.
type RESTTransport struct {
	baseURL    string
	apiVersion string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	ownsClient bool
	token      string
	logger     types.Logger
	hooks      *types.Hooks
}

// Options for the REST transport.
type Options struct {
	BaseURL    string
	APIVersion string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     types.Logger
	Hooks      *types.Hooks
}

// NewRESTTransport creates a new REST transport. When no HTTP client is
// supplied, one is created lazily on first use and owned (and closed)
// by the transport.
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}
	if opts.APIVersion == "" {
		opts.APIVersion = types.APIVersion
	}
	if opts.UserAgent == "" {
		opts.UserAgent = types.DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = types.DefaultTimeout
	}

	return &RESTTransport{
		baseURL:    opts.BaseURL,
		apiVersion: opts.APIVersion,
		userAgent:  opts.UserAgent,
		timeout:    opts.Timeout,
		httpClient: opts.HTTPClient,
		ownsClient: false,
		logger:     opts.Logger,
		hooks:      opts.Hooks,
	}
}

// SetAuth sets the Authorization header value attached to every
// subsequent request. The value is sent verbatim ("JWT <token>").
func (t *RESTTransport) SetAuth(token string) {
	t.token = token
}

// Do executes a request against the weenect API and decodes the
// response.
//
// It returns the decoded JSON value for JSON responses, nil for
// 204 No Content, and map[string]interface{}{"message": <raw text>}
// for any other success body. 4xx/5xx responses become *types.Error,
// transport failures become *types.ConnectionError.
func (t *RESTTransport) Do(ctx context.Context, req *types.Request) (interface{}, error) {
	u, err := t.buildURL(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request URL")
	}

	var body io.Reader = req.Body
	if req.JSON != nil {
		encoded, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		body = bytes.NewReader(encoded)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	// The configured timeout covers the whole round-trip.
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	t.setHeaders(httpReq, req)

	requestID := uuid.New().String()

	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	if t.logger != nil {
		t.logger.Debug("weenect API request", "request_id", requestID, "method", method, "path", req.Path)
	}

	start := time.Now()
	resp, err := t.client().Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		connErr := classifyTransportError(err)
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, connErr)
		}
		if t.logger != nil {
			t.logger.Error("weenect API request failed", "request_id", requestID, "error", connErr)
		}
		return nil, connErr
	}
	defer resp.Body.Close()

	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.ConnectionError{Message: types.CommunicationMessage, Err: err}
	}

	if t.logger != nil {
		t.logger.Debug("weenect API response", "request_id", requestID, "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), contentType)

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, isJSON, respBody)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if isJSON {
		var decoded interface{}
		if err := json.Unmarshal(respBody, &decoded); err != nil {
			return nil, errors.Wrap(err, "failed to parse response")
		}
		return decoded, nil
	}

	return map[string]interface{}{"message": string(respBody)}, nil
}

// Close releases the HTTP client, but only when the transport created
// it itself. Safe to call multiple times.
func (t *RESTTransport) Close() {
	if t.httpClient != nil && t.ownsClient {
		t.httpClient.CloseIdleConnections()
	}
}

// client returns the HTTP client, creating an owned one on first use.
func (t *RESTTransport) client() *http.Client {
	if t.httpClient == nil {
		t.httpClient = &http.Client{}
		t.ownsClient = true
	}
	return t.httpClient
}

// buildURL joins the base URL, API version prefix, relative path and
// query parameters.
func (t *RESTTransport) buildURL(req *types.Request) (string, error) {
	u, err := url.Parse(t.baseURL)
	if err != nil {
		return "", err
	}
	u.Path = t.apiVersion + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}
	return u.String(), nil
}

// setHeaders attaches the default weenect header set, the bearer token
// when present, and finally the caller-supplied headers, which may
// override anything before them.
func (t *RESTTransport) setHeaders(httpReq *http.Request, req *types.Request) {
	headers := map[string]string{
		"User-Agent":    t.userAgent,
		"Accept":        types.AcceptHeader,
		"Origin":        types.AppURL,
		"X-App-Version": types.AppVersion,
		"X-App-User-Id": "",
		"X-App-Type":    types.AppType,
		"DNT":           "1",
	}

	if req.JSON != nil {
		headers["Content-Type"] = contentType
	}

	if t.token != "" {
		headers[authHeaderKey] = t.token
	}

	for k, v := range req.Headers {
		headers[k] = v
	}

	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}
}

// classifyTransportError maps a round-trip failure to one of the two
// ConnectionError kinds: timeout, or generic communication failure.
func classifyTransportError(err error) *types.ConnectionError {
	if isTimeout(err) {
		return &types.ConnectionError{Message: types.TimeoutMessage, Err: err}
	}
	return &types.ConnectionError{Message: types.CommunicationMessage, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

// decodeError builds the API error for a 4xx/5xx response. JSON bodies
// are carried decoded; anything else is wrapped in a message object.
func decodeError(statusCode int, isJSON bool, body []byte) error {
	if isJSON {
		var decoded interface{}
		if err := json.Unmarshal(body, &decoded); err == nil {
			return &types.Error{StatusCode: statusCode, Body: decoded}
		}
	}
	return &types.Error{
		StatusCode: statusCode,
		Body:       map[string]interface{}{"message": string(body)},
	}
}
