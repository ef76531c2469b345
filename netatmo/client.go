package netatmo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Netatmo API base URL.
	DefaultBaseURL = "https://api.netatmo.com"

	// DefaultTimeout bounds each API round trip.
	DefaultTimeout = 30 * time.Second
)

// ClientCredentials identifies a Netatmo developer application.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
}

// Option configures a client.
type Option func(*settings)

type settings struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL sets a custom API base URL.
func WithBaseURL(u string) Option {
	return func(s *settings) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *settings) {
		s.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.httpClient = &http.Client{Timeout: timeout}
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UnauthenticatedClient holds application credentials before the token
// exchange. Its only remote operation is Authenticate.
type UnauthenticatedClient struct {
	credentials ClientCredentials
	baseURL     string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewClient creates an unauthenticated client. No network activity happens
// until Authenticate is called.
func NewClient(credentials ClientCredentials, logger zerolog.Logger, opts ...Option) *UnauthenticatedClient {
	s := newSettings(opts)
	return &UnauthenticatedClient{
		credentials: credentials,
		baseURL:     s.baseURL,
		httpClient:  s.httpClient,
		logger:      logger,
	}
}

// AuthenticatedClient holds an access token and can call every data and
// command endpoint. Its token and transport are never mutated after
// construction, so a single instance is safe for concurrent use.
type AuthenticatedClient struct {
	token      Token
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// WithToken creates an authenticated client from a token obtained elsewhere,
// e.g. persisted from a previous run. The token is not verified; an invalid
// token only surfaces as failures on subsequent calls.
func WithToken(token Token, logger zerolog.Logger, opts ...Option) *AuthenticatedClient {
	s := newSettings(opts)
	return &AuthenticatedClient{
		token:      token,
		baseURL:    s.baseURL,
		httpClient: s.httpClient,
		logger:     logger,
	}
}

// Token returns the token the client was authenticated with.
func (c *AuthenticatedClient) Token() Token {
	return c.token
}

// call runs one round trip of the request pipeline: form-encoded POST,
// status classification, JSON decode into T.
func call[T any](ctx context.Context, httpClient *http.Client, logger zerolog.Logger, name, endpoint string, params url.Values) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToSendRequest, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToSendRequest, err)
	}
	defer resp.Body.Close()

	if err := classifyResponse(name, http.StatusOK, resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadResponse, err)
	}

	logger.Trace().
		Str("call", name).
		Int("status", resp.StatusCode).
		Str("body", string(body)).
		Msg("API response")

	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return &payload, nil
}

// callAuthenticated injects the access token immediately before the round
// trip, into a copy of the parameters; the caller's map is never mutated and
// never holds token material.
func callAuthenticated[T any](ctx context.Context, c *AuthenticatedClient, name, path string, params url.Values) (*T, error) {
	withToken := make(url.Values, len(params)+1)
	for k, v := range params {
		withToken[k] = v
	}
	withToken.Set("access_token", c.token.AccessToken)

	return call[T](ctx, c.httpClient, c.logger, name, c.baseURL+path, withToken)
}

// errorEligibleStatuses are the statuses for which the API is expected to
// return its JSON error envelope.
var errorEligibleStatuses = map[int]bool{
	http.StatusBadRequest:          true,
	http.StatusUnauthorized:        true,
	http.StatusForbidden:           true,
	http.StatusNotFound:            true,
	http.StatusNotAcceptable:       true,
	http.StatusInternalServerError: true,
}

type apiErrorEnvelope struct {
	Error *apiErrorBody `json:"error"`
}

type apiErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// classifyResponse passes responses with the expected status through
// unchanged. For the error-eligible statuses it decodes the vendor error
// envelope into an APIError, degrading to UnknownAPIError when the body
// cannot be read or does not carry the envelope. Any other status becomes an
// UnknownAPIError without touching the body.
func classifyResponse(name string, expected int, resp *http.Response) error {
	switch {
	case resp.StatusCode == expected:
		return nil
	case errorEligibleStatuses[resp.StatusCode]:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &UnknownAPIError{Name: name, StatusCode: resp.StatusCode, cause: err}
		}
		var envelope apiErrorEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return &UnknownAPIError{Name: name, StatusCode: resp.StatusCode, cause: err}
		}
		if envelope.Error == nil {
			return &UnknownAPIError{Name: name, StatusCode: resp.StatusCode}
		}
		return &APIError{Name: name, Code: envelope.Error.Code, Message: envelope.Error.Message}
	default:
		return &UnknownAPIError{Name: name, StatusCode: resp.StatusCode}
	}
}
