package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"travelplanner/config"
	"travelplanner/logger"
)

var (
	ErrNotConfigured = errors.New("amadeus credentials not configured")
	ErrTokenExchange = errors.New("amadeus token exchange failed")
	ErrUpstream      = errors.New("amadeus request failed")
)

// ─── Amadeus Client ───────────────────────────────────────────────────────────

type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	limiter      *rate.Limiter

	cache    Cache
	cacheTTL time.Duration

	exchangeRate float64
	rand         Rand
	logger       *logger.Logger
}

// NewAmadeusClient builds the client from configuration. cache may be nil.
func NewAmadeusClient(cfg *config.Config, cache Cache, log *logger.Logger) *AmadeusClient {
	limit := rate.Inf
	if cfg.Amadeus.RatePerSecond > 0 {
		limit = rate.Limit(cfg.Amadeus.RatePerSecond)
	}
	burst := cfg.Amadeus.RateBurst
	if burst < 1 {
		burst = 1
	}

	c := &AmadeusClient{
		clientID:     cfg.Amadeus.ClientID,
		clientSecret: cfg.Amadeus.ClientSecret,
		baseURL:      strings.TrimRight(cfg.Amadeus.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Amadeus.Timeout()},
		limiter:      rate.NewLimiter(limit, burst),
		cache:        cache,
		cacheTTL:     cfg.Cache.TTL(),
		exchangeRate: cfg.Search.ExchangeRateINR,
		rand:         NewSafeRand(),
		logger:       log.Named("amadeus"),
	}

	if !c.Configured() {
		c.logger.Warn("AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set, searches will use fallback data")
	}
	return c
}

func (c *AmadeusClient) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// ─── OAuth2 Token ─────────────────────────────────────────────────────────────

// Token exchanges the client credentials for a bearer token. Nothing is
// cached: every call hits the token endpoint.
func (c *AmadeusClient) Token(ctx context.Context) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w (%d): %s", ErrTokenExchange, resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrTokenExchange)
	}
	return result.AccessToken, nil
}

func (c *AmadeusClient) get(ctx context.Context, token, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w %s (%d): %s", ErrUpstream, path, resp.StatusCode, string(body))
	}
	return body, nil
}
