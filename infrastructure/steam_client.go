package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"spectrum/domain/entities"
)

// SteamClient resolves Steam account ids to profiles through GetPlayerSummaries
type SteamClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

type steamPlayerSummaries struct {
	Response struct {
		Players []steamPlayer `json:"players"`
	} `json:"response"`
}

type steamPlayer struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	AvatarFull  string `json:"avatarfull"`
}

// NewSteamClient creates a Steam client. The API key is fixed for the client's lifetime.
func NewSteamClient(httpClient *http.Client, baseURL, apiKey string) *SteamClient {
	return &SteamClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Resolve looks up the profile for id. Only the first returned player is used.
func (c *SteamClient) Resolve(ctx context.Context, id entities.PlatformID) (*entities.Profile, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid steam API URL: %w", entities.ErrIdentityUnavailable, err)
	}

	query := endpoint.Query()
	query.Set("key", c.apiKey)
	query.Set("format", "json")
	query.Set("steamids", id.Decimal())
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", entities.ErrIdentityUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the request URL, which carries the API key
		return nil, fmt.Errorf("%w: request failed: %w", entities.ErrIdentityUnavailable, unwrapURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", entities.ErrIdentityUnavailable, resp.StatusCode)
	}

	var summaries steamPlayerSummaries
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", entities.ErrIdentityUnavailable, err)
	}

	if len(summaries.Response.Players) == 0 {
		return nil, fmt.Errorf("%w: steam id %s", entities.ErrIdentityNotFound, id.Decimal())
	}

	player := summaries.Response.Players[0]
	return &entities.Profile{
		CanonicalID: player.SteamID,
		DisplayName: player.PersonaName,
		AvatarURL:   player.AvatarFull,
	}, nil
}

// unwrapURLError strips the request URL from a *url.Error
func unwrapURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}
