package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"spectrum/domain/entities"
)

// Live session request headers
const (
	HeaderVerificationToken = "X-Verification-Token"
	HeaderPlayerID          = "X-Player-ID"
)

const liveSessionPath = "/player"

// LiveSessionClient queries the running game server for a player's session
type LiveSessionClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewLiveSessionClient creates a live session client. The shared secret is
// fixed for the client's lifetime.
func NewLiveSessionClient(httpClient *http.Client, baseURL, token string) *LiveSessionClient {
	return &LiveSessionClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

// Fetch returns the live session for numericID. Every non-200 response is
// reported as not found; the server does not tell offline from unknown.
func (c *LiveSessionClient) Fetch(ctx context.Context, numericID uint64) (*entities.SessionSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+liveSessionPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", entities.ErrServiceUnavailable, err)
	}
	req.Header.Set(HeaderVerificationToken, c.token)
	req.Header.Set(HeaderPlayerID, strconv.FormatUint(numericID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: live session %d returned status %d", entities.ErrPlayerNotFound, numericID, resp.StatusCode)
	}

	var snapshot entities.SessionSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: failed to decode session: %w", entities.ErrServiceUnavailable, err)
	}

	return &snapshot, nil
}

// NewHTTPClient creates the outbound HTTP client shared by the identity and live clients
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
