package netatmo

import (
	"context"
	"fmt"
	"net/url"
)

const tokenPath = "/oauth2/token"

// Scope names an API permission granted to a token.
type Scope string

// Scopes the Netatmo API grants.
const (
	ScopeReadStation     Scope = "read_station"
	ScopeReadThermostat  Scope = "read_thermostat"
	ScopeWriteThermostat Scope = "write_thermostat"
	ScopeReadHomecoach   Scope = "read_homecoach"
	ScopeReadCamera      Scope = "read_camera"
	ScopeAccessCamera    Scope = "access_camera"
	ScopeReadPresence    Scope = "read_presence"
	ScopeAccessPresence  Scope = "access_presence"
)

// Token is the credential set returned by the OAuth token endpoint. The
// client only ever reads AccessToken; expiry and scopes are carried for the
// caller and never interpreted.
type Token struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	ExpiresIn    int64   `json:"expires_in"`
	Scopes       []Scope `json:"scope"`
}

// Authenticate exchanges a refresh token for an access token and returns an
// authenticated client reusing the receiver's transport. The receiver should
// be discarded afterwards; there is no path back to the unauthenticated
// state and no refresh-on-expiry.
func (c *UnauthenticatedClient) Authenticate(ctx context.Context, refreshToken string) (*AuthenticatedClient, error) {
	params := url.Values{}
	params.Set("grant_type", "refresh_token")
	params.Set("refresh_token", refreshToken)
	params.Set("client_id", c.credentials.ClientID)
	params.Set("client_secret", c.credentials.ClientSecret)

	token, err := call[Token](ctx, c.httpClient, c.logger, "refresh_token", c.baseURL+tokenPath, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	c.logger.Debug().
		Int64("expires_in", token.ExpiresIn).
		Msg("Authenticated with Netatmo API")

	return &AuthenticatedClient{
		token:      *token,
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		logger:     c.logger,
	}, nil
}
