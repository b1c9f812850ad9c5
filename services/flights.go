package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"travelplanner/logger"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type FlightOffer struct {
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flightNumber"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	Price            Amount `json:"price"`
	Currency         string `json:"currency"`
	Duration         string `json:"duration"`
	Estimated        bool   `json:"estimated"`
}

type FlightSearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	TravelClass   string
	Currency      string
}

type FlightSearchResult struct {
	Flights  []FlightOffer `json:"flights"`
	Degraded bool          `json:"degraded"`
	Source   string        `json:"source"` // "live" or "estimated"
}

const (
	SourceLive      = "live"
	SourceEstimated = "estimated"

	maxFlightOffers    = 15
	processedOffers    = 10
	flightResultTarget = 3
)

func (p FlightSearchParams) withDefaults() FlightSearchParams {
	if p.Adults <= 0 {
		p.Adults = 1
	}
	if p.TravelClass == "" {
		p.TravelClass = "ECONOMY"
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	return p
}

// ─── Flight Search ────────────────────────────────────────────────────────────

// SearchFlights returns up to three distinct offers. It never fails: any
// upstream problem, or a response with nothing usable in it, yields the
// fixed estimated set flagged as degraded.
func (c *AmadeusClient) SearchFlights(ctx context.Context, p FlightSearchParams) FlightSearchResult {
	p = p.withDefaults()
	log := c.logger.With(
		logger.String("origin", p.Origin),
		logger.String("destination", p.Destination),
		logger.String("date", p.DepartureDate),
	)

	flights, err := c.searchFlightOffers(ctx, p)
	if err != nil {
		log.Warn("Flight search failed, using fallback", logger.Error(err))
		return FlightSearchResult{Flights: FallbackFlights(p), Degraded: true, Source: SourceEstimated}
	}
	if len(flights) == 0 {
		log.Warn("Flight search returned no usable offers, using fallback")
		return FlightSearchResult{Flights: FallbackFlights(p), Degraded: true, Source: SourceEstimated}
	}

	log.Info("Flight search complete", logger.Int("flights", len(flights)))
	return FlightSearchResult{Flights: flights, Source: SourceLive}
}

func (c *AmadeusClient) searchFlightOffers(ctx context.Context, p FlightSearchParams) ([]FlightOffer, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	params := url.Values{}
	params.Set("originLocationCode", p.Origin)
	params.Set("destinationLocationCode", p.Destination)
	params.Set("departureDate", p.DepartureDate)
	params.Set("adults", strconv.Itoa(p.Adults))
	params.Set("currencyCode", p.Currency)
	params.Set("max", strconv.Itoa(maxFlightOffers))
	if p.ReturnDate != "" {
		params.Set("returnDate", p.ReturnDate)
	}
	if p.TravelClass != "" {
		params.Set("travelClass", p.TravelClass)
	}

	body, err := c.get(ctx, token, "/v2/shopping/flight-offers", params)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	var resp flightOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	return normalizeFlightOffers(resp, p), nil
}

// Amadeus flight offers response structures
type flightOffersResponse struct {
	Data []flightOfferPayload `json:"data"`
}

type flightOfferPayload struct {
	Price Opt[struct {
		Total    Opt[Amount] `json:"total"`
		Currency Opt[string] `json:"currency"`
	}] `json:"price"`
	Itineraries []struct {
		Duration Opt[string] `json:"duration"`
		Segments []struct {
			CarrierCode Opt[string]        `json:"carrierCode"`
			Number      Opt[string]        `json:"number"`
			Departure   Opt[segmentAnchor] `json:"departure"`
			Arrival     Opt[segmentAnchor] `json:"arrival"`
		} `json:"segments"`
	} `json:"itineraries"`
}

type segmentAnchor struct {
	IATACode Opt[string] `json:"iataCode"`
	At       Opt[string] `json:"at"`
}

// normalizeFlightOffers flattens the first segment of each offer, removes
// duplicate (airline, flight number) pairs and pads the list to three.
func normalizeFlightOffers(resp flightOffersResponse, p FlightSearchParams) []FlightOffer {
	parsed := make([]FlightOffer, 0, processedOffers)
	for i, offer := range resp.Data {
		if i >= processedOffers {
			break
		}
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		itinerary := offer.Itineraries[0]
		seg := itinerary.Segments[0]
		price := offer.Price.Value

		parsed = append(parsed, FlightOffer{
			Airline:          seg.CarrierCode.Or("Unknown"),
			FlightNumber:     seg.Number.Or("Unknown"),
			DepartureTime:    seg.Departure.Value.At.Or("N/A"),
			ArrivalTime:      seg.Arrival.Value.At.Or("N/A"),
			DepartureAirport: seg.Departure.Value.IATACode.Or(p.Origin),
			ArrivalAirport:   seg.Arrival.Value.IATACode.Or(p.Destination),
			Price:            price.Total.Or(0),
			Currency:         price.Currency.Or(p.Currency),
			Duration:         itinerary.Duration.Or("N/A"),
		})
	}

	type flightKey struct{ airline, number string }
	seen := make(map[flightKey]bool)
	unique := make([]FlightOffer, 0, flightResultTarget)
	for _, f := range parsed {
		k := flightKey{f.Airline, f.FlightNumber}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, f)
		if len(unique) >= flightResultTarget {
			break
		}
	}

	for len(unique) < flightResultTarget && len(parsed) > 0 {
		variant := parsed[0]
		n := len(unique)
		variant.Price = Amount(variant.Price.Float() * (1 + float64(n)*0.1))
		variant.FlightNumber = fmt.Sprintf("%s%d", variant.Airline, 100+n)
		unique = append(unique, variant)
	}

	return unique
}

// ─── Fallback ─────────────────────────────────────────────────────────────────

// FallbackFlights is the fixed estimated set returned when live search is
// unavailable. Times are anchored on the requested departure date.
func FallbackFlights(p FlightSearchParams) []FlightOffer {
	p = p.withDefaults()
	mk := func(airline, number, dep, arr string, price float64) FlightOffer {
		return FlightOffer{
			Airline:          airline,
			FlightNumber:     number,
			DepartureTime:    p.DepartureDate + "T" + dep,
			ArrivalTime:      p.DepartureDate + "T" + arr,
			DepartureAirport: p.Origin,
			ArrivalAirport:   p.Destination,
			Price:            Amount(price),
			Currency:         p.Currency,
			Duration:         "PT6H30M",
			Estimated:        true,
		}
	}
	return []FlightOffer{
		mk("AI", "AI101", "08:00:00", "14:30:00", 15420.50),
		mk("SG", "SG205", "12:15:00", "18:45:00", 18750.75),
		mk("6E", "6E303", "16:30:00", "23:00:00", 12890.25),
	}
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

var airlineNames = map[string]string{
	"6E": "IndiGo",
	"AI": "Air India",
	"SG": "SpiceJet",
	"G8": "GoAir",
	"I5": "AirAsia India",
	"UK": "Vistara",
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"EY": "Etihad Airways",
	"TK": "Turkish Airlines",
	"LH": "Lufthansa",
	"BA": "British Airways",
	"AF": "Air France",
	"KL": "KLM",
	"SQ": "Singapore Airlines",
	"TG": "Thai Airways",
	"MH": "Malaysia Airlines",
	"CX": "Cathay Pacific",
	"JL": "Japan Airlines",
	"NH": "ANA",
}

// AirlineName returns the display name for an IATA carrier code.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return code + " Airlines"
}

// HumanDuration converts ISO 8601 duration (PT5H30M) to human readable (5h 30m)
func HumanDuration(iso string) string {
	if !strings.HasPrefix(iso, "PT") {
		return iso
	}
	iso = strings.TrimPrefix(iso, "PT")
	result := ""
	if hIdx := strings.Index(iso, "H"); hIdx >= 0 {
		result += iso[:hIdx] + "h"
		iso = iso[hIdx+1:]
	}
	if mIdx := strings.Index(iso, "M"); mIdx >= 0 {
		if result != "" {
			result += " "
		}
		result += iso[:mIdx] + "m"
	}
	return result
}
