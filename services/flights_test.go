package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flightParams() FlightSearchParams {
	return FlightSearchParams{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2025-03-01",
		Currency:      "INR",
	}
}

func TestSearchFlights_DedupAndLimit(t *testing.T) {
	f := newFakeAmadeus(t)
	f.handle(t, "/v2/shopping/flight-offers", http.StatusOK, `{"data":[
		{"price":{"total":"5000.00","currency":"INR"},"itineraries":[{"duration":"PT2H10M","segments":[
			{"carrierCode":"6E","number":"201","departure":{"iataCode":"DEL","at":"2025-03-01T06:00:00"},"arrival":{"iataCode":"BOM","at":"2025-03-01T08:10:00"}}]}]},
		{"price":{"total":"5100.00","currency":"INR"},"itineraries":[{"duration":"PT2H10M","segments":[
			{"carrierCode":"6E","number":"201","departure":{"iataCode":"DEL","at":"2025-03-01T06:00:00"},"arrival":{"iataCode":"BOM","at":"2025-03-01T08:10:00"}}]}]},
		{"price":{"total":"6200.00","currency":"INR"},"itineraries":[{"duration":"PT2H5M","segments":[
			{"carrierCode":"AI","number":"865","departure":{"iataCode":"DEL","at":"2025-03-01T09:00:00"},"arrival":{"iataCode":"BOM","at":"2025-03-01T11:05:00"}}]}]},
		{"price":{"total":"4800.00","currency":"INR"},"itineraries":[{"duration":"PT2H15M","segments":[
			{"carrierCode":"UK","number":"995","departure":{"iataCode":"DEL","at":"2025-03-01T12:00:00"},"arrival":{"iataCode":"BOM","at":"2025-03-01T14:15:00"}}]}]},
		{"price":{"total":"4700.00","currency":"INR"},"itineraries":[{"duration":"PT2H15M","segments":[
			{"carrierCode":"SG","number":"8169","departure":{"iataCode":"DEL","at":"2025-03-01T15:00:00"},"arrival":{"iataCode":"BOM","at":"2025-03-01T17:15:00"}}]}]}
	]}`)
	c := f.client(t, nil)

	res := c.SearchFlights(context.Background(), flightParams())

	require.Len(t, res.Flights, 3)
	assert.False(t, res.Degraded)
	assert.Equal(t, SourceLive, res.Source)
	assert.Equal(t, "6E", res.Flights[0].Airline)
	assert.Equal(t, "201", res.Flights[0].FlightNumber)
	assert.Equal(t, 5000.0, res.Flights[0].Price.Float())
	assert.Equal(t, "AI", res.Flights[1].Airline)
	assert.Equal(t, "UK", res.Flights[2].Airline)
	for _, fl := range res.Flights {
		assert.False(t, fl.Estimated)
	}
}

func TestSearchFlights_PadsFromFirstOffer(t *testing.T) {
	f := newFakeAmadeus(t)
	f.handle(t, "/v2/shopping/flight-offers", http.StatusOK, `{"data":[
		{"price":{"total":"1000.00"},"itineraries":[{"segments":[{"carrierCode":"6E","number":"1"}]}]}
	]}`)
	c := f.client(t, nil)

	res := c.SearchFlights(context.Background(), flightParams())

	require.Len(t, res.Flights, 3)
	assert.Equal(t, "1", res.Flights[0].FlightNumber)
	assert.Equal(t, "6E101", res.Flights[1].FlightNumber)
	assert.InDelta(t, 1100.0, res.Flights[1].Price.Float(), 0.001)
	assert.Equal(t, "6E102", res.Flights[2].FlightNumber)
	assert.InDelta(t, 1200.0, res.Flights[2].Price.Float(), 0.001)
}

func TestSearchFlights_AbsentFieldsDefault(t *testing.T) {
	f := newFakeAmadeus(t)
	f.handle(t, "/v2/shopping/flight-offers", http.StatusOK, `{"data":[
		{"itineraries":[{"segments":[{}]}]},
		{"itineraries":[]},
		{"price":{"total":"10"}}
	]}`)
	c := f.client(t, nil)

	res := c.SearchFlights(context.Background(), flightParams())

	require.Len(t, res.Flights, 3)
	first := res.Flights[0]
	assert.Equal(t, "Unknown", first.Airline)
	assert.Equal(t, "Unknown", first.FlightNumber)
	assert.Equal(t, "N/A", first.DepartureTime)
	assert.Equal(t, "N/A", first.ArrivalTime)
	assert.Equal(t, "N/A", first.Duration)
	assert.Equal(t, "DEL", first.DepartureAirport)
	assert.Equal(t, "BOM", first.ArrivalAirport)
	assert.Equal(t, "INR", first.Currency)
	assert.Equal(t, 0.0, first.Price.Float())
}

func TestSearchFlights_OnlyFirstTenOffersProcessed(t *testing.T) {
	body := `{"data":[`
	for i := 0; i < 10; i++ {
		body += `{"itineraries":[]},`
	}
	body += `{"price":{"total":"99"},"itineraries":[{"segments":[{"carrierCode":"AI","number":"9"}]}]}]}`

	f := newFakeAmadeus(t)
	f.handle(t, "/v2/shopping/flight-offers", http.StatusOK, body)
	c := f.client(t, nil)

	res := c.SearchFlights(context.Background(), flightParams())

	assert.True(t, res.Degraded)
	assert.Equal(t, "AI101", res.Flights[0].FlightNumber)
}

func TestSearchFlights_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *fakeAmadeus, t *testing.T)
		tokens int32
	}{
		{
			name:   "token rejected",
			setup:  func(f *fakeAmadeus, t *testing.T) { f.tokenFails = true },
			tokens: 1,
		},
		{
			name: "upstream error",
			setup: func(f *fakeAmadeus, t *testing.T) {
				f.handle(t, "/v2/shopping/flight-offers", http.StatusBadRequest, `{"errors":[{"code":477}]}`)
			},
			tokens: 1,
		},
		{
			name: "unparsable price",
			setup: func(f *fakeAmadeus, t *testing.T) {
				f.handle(t, "/v2/shopping/flight-offers", http.StatusOK,
					`{"data":[{"price":{"total":"abc"},"itineraries":[{"segments":[{}]}]}]}`)
			},
			tokens: 1,
		},
		{
			name: "empty data",
			setup: func(f *fakeAmadeus, t *testing.T) {
				f.handle(t, "/v2/shopping/flight-offers", http.StatusOK, `{"data":[]}`)
			},
			tokens: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeAmadeus(t)
			tt.setup(f, t)
			c := f.client(t, nil)

			res := c.SearchFlights(context.Background(), flightParams())

			assert.True(t, res.Degraded)
			assert.Equal(t, SourceEstimated, res.Source)
			require.Len(t, res.Flights, 3)
			assert.Equal(t, "AI101", res.Flights[0].FlightNumber)
			assert.Equal(t, "2025-03-01T08:00:00", res.Flights[0].DepartureTime)
			assert.Equal(t, 15420.50, res.Flights[0].Price.Float())
			assert.Equal(t, "SG205", res.Flights[1].FlightNumber)
			assert.Equal(t, "6E303", res.Flights[2].FlightNumber)
			assert.Equal(t, "2025-03-01T23:00:00", res.Flights[2].ArrivalTime)
			for _, fl := range res.Flights {
				assert.Equal(t, "DEL", fl.DepartureAirport)
				assert.Equal(t, "BOM", fl.ArrivalAirport)
				assert.Equal(t, "INR", fl.Currency)
				assert.Equal(t, "PT6H30M", fl.Duration)
				assert.True(t, fl.Estimated)
			}
			assert.Equal(t, tt.tokens, f.tokenCalls.Load())
		})
	}
}

func TestSearchFlights_RequestParams(t *testing.T) {
	f := newFakeAmadeus(t)
	f.mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "DEL", q.Get("originLocationCode"))
		assert.Equal(t, "BOM", q.Get("destinationLocationCode"))
		assert.Equal(t, "2025-03-01", q.Get("departureDate"))
		assert.Equal(t, "2025-03-05", q.Get("returnDate"))
		assert.Equal(t, "2", q.Get("adults"))
		assert.Equal(t, "BUSINESS", q.Get("travelClass"))
		assert.Equal(t, "INR", q.Get("currencyCode"))
		assert.Equal(t, "15", q.Get("max"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	c := f.client(t, nil)

	p := flightParams()
	p.ReturnDate = "2025-03-05"
	p.Adults = 2
	p.TravelClass = "BUSINESS"
	c.SearchFlights(context.Background(), p)
}

func TestAirlineName(t *testing.T) {
	assert.Equal(t, "IndiGo", AirlineName("6E"))
	assert.Equal(t, "Air India", AirlineName("AI"))
	assert.Equal(t, "ZZ Airlines", AirlineName("ZZ"))
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "6h 30m", HumanDuration("PT6H30M"))
	assert.Equal(t, "2h", HumanDuration("PT2H"))
	assert.Equal(t, "45m", HumanDuration("PT45M"))
	assert.Equal(t, "N/A", HumanDuration("N/A"))
}
