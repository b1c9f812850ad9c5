package services

import (
	"context"
	"encoding/json"
	"net/url"

	"travelplanner/logger"
)

type LocationSuggestion struct {
	Name     string          `json:"name"`
	IATACode string          `json:"iataCode"`
	SubType  string          `json:"subType"`
	Address  json.RawMessage `json:"address"`
}

type locationsResponse struct {
	Data []struct {
		Name     Opt[string]     `json:"name"`
		IATACode Opt[string]     `json:"iataCode"`
		SubType  Opt[string]     `json:"subType"`
		Address  json.RawMessage `json:"address"`
	} `json:"data"`
}

// SearchLocations returns airport and city suggestions for a keyword.
// Failures are logged and yield an empty list.
func (c *AmadeusClient) SearchLocations(ctx context.Context, keyword string) []LocationSuggestion {
	var cached []LocationSuggestion
	if c.cacheGet(ctx, keyword, cacheTypeLocations, &cached) {
		return cached
	}

	token, err := c.Token(ctx)
	if err != nil {
		c.logger.Warn("Location search skipped", logger.Error(err))
		return []LocationSuggestion{}
	}

	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("subType", "AIRPORT,CITY")
	params.Set("sort", "analytics.travelers.score")
	params.Set("view", "LIGHT")

	body, err := c.get(ctx, token, "/v1/reference-data/locations", params)
	if err != nil {
		c.logger.Error("Location search failed", logger.String("keyword", keyword), logger.Error(err))
		return []LocationSuggestion{}
	}

	var resp locationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("Failed to parse locations", logger.Error(err))
		return []LocationSuggestion{}
	}

	out := make([]LocationSuggestion, 0, len(resp.Data))
	for _, loc := range resp.Data {
		if !loc.Name.Set || !loc.IATACode.Set || !loc.SubType.Set {
			continue
		}
		address := loc.Address
		if len(address) == 0 || string(address) == "null" {
			address = json.RawMessage(`{}`)
		}
		out = append(out, LocationSuggestion{
			Name:     loc.Name.Value,
			IATACode: loc.IATACode.Value,
			SubType:  loc.SubType.Value,
			Address:  address,
		})
	}

	if len(out) > 0 {
		c.cacheSet(ctx, keyword, cacheTypeLocations, out)
	}
	return out
}

// CityCode resolves a city name to its IATA city code using an existing
// token. Returns false when nothing matched or the lookup failed.
func (c *AmadeusClient) CityCode(ctx context.Context, token, keyword string) (string, bool) {
	var cached string
	if c.cacheGet(ctx, keyword, cacheTypeCityCode, &cached) && cached != "" {
		return cached, true
	}

	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("max", "1")

	body, err := c.get(ctx, token, "/v1/reference-data/locations/cities", params)
	if err != nil {
		c.logger.Error("City code lookup failed", logger.String("keyword", keyword), logger.Error(err))
		return "", false
	}

	var resp struct {
		Data []struct {
			IATACode string `json:"iataCode"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("Failed to parse city code", logger.Error(err))
		return "", false
	}
	if len(resp.Data) == 0 || resp.Data[0].IATACode == "" {
		return "", false
	}

	code := resp.Data[0].IATACode
	c.cacheSet(ctx, keyword, cacheTypeCityCode, code)
	return code, true
}
