package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travelplanner/database"
	"travelplanner/services"
)

func TestSearchCities_Available(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/search_cities", url.Values{"query": {"  "}})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AvailableCities []cityEntry `json:"available_cities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.AvailableCities, 10)
	assert.Equal(t, cityEntry{Name: "New York", Country: "United States", CityCode: "NYC"}, body.AvailableCities[0])
	env.travel.AssertNotCalled(t, "SearchLocations", mock.Anything, mock.Anything)
}

func TestSearchCities_Suggestions(t *testing.T) {
	env := newTestEnv(t)
	env.travel.On("SearchLocations", mock.Anything, "par").Return([]services.LocationSuggestion{
		{Name: "PARIS", IATACode: "PAR", SubType: "CITY", Address: json.RawMessage(`{}`)},
	})

	w := env.postForm("/search_cities", url.Values{"query": {"par"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"suggestions":[{"name":"PARIS","iataCode":"PAR","subType":"CITY","address":{}}]}`, w.Body.String())
	env.travel.AssertExpectations(t)
}

func TestGetMinPrices_Sample(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("MinPrices", mock.Anything, "New York", "Paris").Return(&database.MinPrice{
		Origin: "New York", Destination: "Paris", MinFlightPrice: 450, MinHotelPrice: 180,
	}, nil)

	w := env.postForm("/get_min_prices", url.Values{"startPoint": {"new york"}, "destination": {"Paris, France"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"min_flight_price":"$450","min_hotel_price":"$180","currency":"USD","source":"sample"}`, w.Body.String())
	env.travel.AssertNotCalled(t, "MinHotelPrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetMinPrices_Scan(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		found bool
		want  string
	}{
		{"found", 5420, true, `{"min_hotel_price":"₹5,420"}`},
		{"none", 0, false, `{"min_hotel_price":"N/A"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.store.On("MinPrices", mock.Anything, "Gotham", "Goa").Return(nil, database.ErrNotFound)
			env.travel.On("MinHotelPrice", mock.Anything, "Goa", testNow, 30).Return(tt.price, tt.found)

			w := env.postForm("/get_min_prices", url.Values{"startPoint": {"Gotham"}, "destination": {"Goa, India"}})

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
			env.travel.AssertExpectations(t)
		})
	}
}

func TestGetMinPrices_StoreErrorFallsBackToScan(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("MinPrices", mock.Anything, "Delhi", "Goa").Return(nil, errors.New("disk I/O error"))
	env.travel.On("MinHotelPrice", mock.Anything, "Goa", testNow, 30).Return(3100.0, true)

	w := env.postForm("/get_min_prices", url.Values{"startPoint": {"Delhi"}, "destination": {"Goa"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"min_hotel_price":"₹3,100"}`, w.Body.String())
}

func TestGetMinPrices_Missing(t *testing.T) {
	env := newTestEnv(t)
	w := env.postForm("/get_min_prices", url.Values{"startPoint": {"Delhi"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Origin and destination are required"}`, w.Body.String())
}

func TestSearchFlights(t *testing.T) {
	env := newTestEnv(t)
	params := services.FlightSearchParams{
		Origin: "DEL", Destination: "CDG", DepartureDate: "2025-03-01", ReturnDate: "2025-03-05",
		Adults: 2, TravelClass: "ECONOMY", Currency: "INR",
	}
	env.travel.On("SearchFlights", mock.Anything, params).Return(services.FlightSearchResult{
		Flights:  services.FallbackFlights(params),
		Degraded: true,
		Source:   services.SourceEstimated,
	})

	w := env.postForm("/search_flights", url.Values{
		"startPointCode":  {"del"},
		"destinationCode": {"CDG"},
		"startDate":       {"2025-03-01"},
		"endDate":         {"2025-03-05"},
		"adults":          {"2"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "estimated", w.Header().Get(dataSourceHeader))

	// the page expects a bare array
	require.True(t, strings.HasPrefix(w.Body.String(), "["))
	var flights []services.FlightOffer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &flights))
	require.Len(t, flights, 3)
	assert.Equal(t, "AI101", flights[0].FlightNumber)
	assert.Equal(t, services.Amount(15420.5), flights[0].Price)
	assert.Equal(t, "INR", flights[0].Currency)
	assert.True(t, flights[0].Estimated)
	env.travel.AssertExpectations(t)
}

func TestSearchFlights_Validation(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{"missing date", url.Values{"startPointCode": {"DEL"}, "destinationCode": {"CDG"}},
			"Origin, destination, and departure date are required"},
		{"bad adults", url.Values{"startPointCode": {"DEL"}, "destinationCode": {"CDG"}, "startDate": {"2025-03-01"}, "adults": {"two"}},
			"adults must be a whole number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.postForm("/search_flights", tt.form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			env.travel.AssertNotCalled(t, "SearchFlights", mock.Anything, mock.Anything)
		})
	}
}

func TestSearchFlights_Empty(t *testing.T) {
	env := newTestEnv(t)
	env.travel.On("SearchFlights", mock.Anything, mock.Anything).Return(services.FlightSearchResult{})

	w := env.postForm("/search_flights", url.Values{
		"startPointCode": {"DEL"}, "destinationCode": {"CDG"}, "startDate": {"2025-03-01"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchHotels(t *testing.T) {
	env := newTestEnv(t)
	env.travel.On("SearchHotels", mock.Anything, services.HotelSearchParams{
		City: "Paris", CheckIn: "2025-03-01", CheckOut: "2025-03-03", Adults: 1,
	}).Return(services.HotelSearchResult{
		Hotels: []services.HotelOffer{
			{Name: "Budget Inn Hotel Paris", Price: 4800, Currency: "INR", Synthetic: true},
			{Name: "Hotel Paris", Price: 9150.5, Currency: "INR"},
		},
		RealCount: 1,
	})

	w := env.postForm("/search_hotels", url.Values{
		"destination": {"Paris, France"}, "startDate": {"2025-03-01"}, "endDate": {"2025-03-03"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "live", w.Header().Get(dataSourceHeader))

	var hotels []services.HotelOffer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hotels))
	require.Len(t, hotels, 2)
	assert.True(t, hotels[0].Synthetic)
	assert.Equal(t, services.Amount(9150.5), hotels[1].Price)
}

func TestSearchHotels_EmptyList(t *testing.T) {
	env := newTestEnv(t)
	env.travel.On("SearchHotels", mock.Anything, mock.Anything).Return(services.HotelSearchResult{Degraded: true})

	w := env.postForm("/search_hotels", url.Values{"destination": {"Atlantis"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Equal(t, "estimated", w.Header().Get(dataSourceHeader))
}

func TestSearchHotels_MissingDestination(t *testing.T) {
	env := newTestEnv(t)
	w := env.postForm("/search_hotels", url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Destination is required"}`, w.Body.String())
}

func TestFlightStatus(t *testing.T) {
	env := newTestEnv(t)
	env.travel.On("FlightStatus", mock.Anything, "AI", "101", "2025-03-01").Return(&services.FlightStatus{
		FlightNumber: "AI101",
		Status:       "Scheduled",
		Departure:    json.RawMessage(`{"iataCode":"DEL"}`),
		Arrival:      json.RawMessage(`{"iataCode":"CDG"}`),
	}, true)

	w := env.postForm("/flight_status", url.Values{
		"carrierCode": {"ai"}, "flightNumber": {"101"}, "departureDate": {"2025-03-01"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flightNumber":"AI101","status":"Scheduled","departure":{"iataCode":"DEL"},"arrival":{"iataCode":"CDG"}}`, w.Body.String())
}

func TestFlightStatus_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.travel.On("FlightStatus", mock.Anything, "AI", "999", "2025-03-01").Return(nil, false)

	w := env.postForm("/flight_status", url.Values{
		"carrierCode": {"AI"}, "flightNumber": {"999"}, "departureDate": {"2025-03-01"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Flight status not found"}`, w.Body.String())
}

func TestFlightStatus_Missing(t *testing.T) {
	env := newTestEnv(t)
	w := env.postForm("/flight_status", url.Values{"carrierCode": {"AI"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
