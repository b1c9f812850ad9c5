package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"travelplanner/logger"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type HotelOffer struct {
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	Price       Amount   `json:"price"`
	Currency    string   `json:"currency"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Synthetic   bool     `json:"synthetic"`
}

type HotelSearchParams struct {
	City     string
	CheckIn  string
	CheckOut string
	Adults   int
}

type HotelSearchResult struct {
	Hotels    []HotelOffer `json:"hotels"`
	Degraded  bool         `json:"degraded"`
	RealCount int          `json:"real_count"`
}

// DateLayout is the YYYY-MM-DD form every upstream date uses.
const DateLayout = "2006-01-02"

const (
	hotelResultTarget = 3
	maxRealHotels     = 2
	maxHotelIDs       = 5
	minSyntheticPrice = 1500
)

// ─── Hotel Search ─────────────────────────────────────────────────────────────

// SearchHotels mixes up to two live offers with generated ones so that
// exactly three hotels come back, cheapest first.
func (c *AmadeusClient) SearchHotels(ctx context.Context, p HotelSearchParams) HotelSearchResult {
	if p.Adults <= 0 {
		p.Adults = 1
	}

	live, err := c.liveHotels(ctx, p)
	if err != nil {
		c.logger.Warn("Live hotel search failed, generating hotels",
			logger.String("city", p.City), logger.Error(err))
	}

	hotels := append(live, c.SyntheticHotels(p.City, hotelResultTarget-len(live))...)
	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].Price < hotels[j].Price
	})

	c.logger.Info("Hotel search complete",
		logger.String("city", p.City),
		logger.Int("real", len(live)),
		logger.Int("synthetic", len(hotels)-len(live)))

	return HotelSearchResult{Hotels: hotels, Degraded: err != nil, RealCount: len(live)}
}

func (c *AmadeusClient) liveHotels(ctx context.Context, p HotelSearchParams) ([]HotelOffer, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	cityCode := ""
	if city, ok := ResolveCity(p.City); ok {
		cityCode = city.CityCode
	} else if code, ok := c.CityCode(ctx, token, p.City); ok {
		cityCode = code
	}
	if cityCode == "" {
		return nil, nil
	}

	ids, err := c.hotelIDsByCity(ctx, token, cityCode)
	if err != nil {
		return nil, fmt.Errorf("hotel list failed: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("hotelIds", strings.Join(ids, ","))
	params.Set("checkInDate", p.CheckIn)
	params.Set("checkOutDate", p.CheckOut)
	params.Set("adults", strconv.Itoa(p.Adults))

	body, err := c.get(ctx, token, "/v3/shopping/hotel-offers", params)
	if err != nil {
		return nil, fmt.Errorf("hotel offers failed: %w", err)
	}

	var resp hotelOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel offers: %w", err)
	}

	return c.normalizeHotelOffers(resp, p.City), nil
}

type hotelListResponse struct {
	Data []struct {
		HotelID string `json:"hotelId"`
	} `json:"data"`
}

func (c *AmadeusClient) hotelIDsByCity(ctx context.Context, token, cityCode string) ([]string, error) {
	params := url.Values{}
	params.Set("cityCode", cityCode)
	params.Set("radius", "50")
	params.Set("radiusUnit", "KM")
	params.Set("hotelSource", "ALL")

	body, err := c.get(ctx, token, "/v1/reference-data/locations/hotels/by-city", params)
	if err != nil {
		return nil, err
	}

	var resp hotelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel list: %w", err)
	}

	ids := make([]string, 0, maxHotelIDs)
	for _, h := range resp.Data {
		if len(ids) >= maxHotelIDs {
			break
		}
		if h.HotelID != "" {
			ids = append(ids, h.HotelID)
		}
	}
	return ids, nil
}

type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			Name      Opt[string]   `json:"name"`
			Rating    Opt[Amount]   `json:"rating"`
			Amenities Opt[[]string] `json:"amenities"`
		} `json:"hotel"`
		Offers []struct {
			Price struct {
				Total Opt[string] `json:"total"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

func (c *AmadeusClient) normalizeHotelOffers(resp hotelOffersResponse, city string) []HotelOffer {
	hotels := make([]HotelOffer, 0, maxRealHotels)
	for _, item := range resp.Data {
		if len(hotels) >= maxRealHotels {
			break
		}
		if len(item.Offers) == 0 || !item.Offers[0].Price.Total.Set {
			c.logger.Debug("Skipping hotel without a priced offer", logger.String("city", city))
			continue
		}
		total, err := strconv.ParseFloat(item.Offers[0].Price.Total.Value, 64)
		if err != nil {
			c.logger.Debug("Skipping hotel with unparsable price", logger.String("city", city), logger.Error(err))
			continue
		}

		hotels = append(hotels, HotelOffer{
			Name:        item.Hotel.Name.Or("Hotel " + city),
			Rating:      item.Hotel.Rating.Or(4.0).Float(),
			Price:       Amount(total * c.exchangeRate),
			Currency:    "INR",
			Location:    city + " City Center",
			Description: "Real hotel in " + city + " from Amadeus API",
			Amenities:   item.Hotel.Amenities.Or([]string{"WiFi", "Restaurant"}),
		})
	}
	return hotels
}

// ─── Synthetic Hotels ─────────────────────────────────────────────────────────

type hotelArchetype struct {
	kind       string
	rating     float64
	multiplier float64
	amenities  []string
}

var hotelArchetypes = []hotelArchetype{
	{"Grand", 4.5, 1.3, []string{"WiFi", "Pool", "Spa", "Restaurant", "Gym"}},
	{"Plaza", 4.0, 1.0, []string{"WiFi", "Restaurant", "Business Center", "Gym"}},
	{"Boutique", 4.2, 1.1, []string{"WiFi", "Restaurant", "Rooftop Bar"}},
	{"Business", 3.8, 0.9, []string{"WiFi", "Business Center", "Meeting Rooms"}},
	{"Budget Inn", 3.5, 0.6, []string{"WiFi", "Parking"}},
}

var hotelLocationSuffixes = []string{"City Center", "Business District", "Downtown", "Near Airport"}

// PriceTier returns the nightly INR range used for generated hotels.
func PriceTier(city string) (lo, hi int) {
	lower := strings.ToLower(city)
	containsAny := func(names ...string) bool {
		for _, n := range names {
			if strings.Contains(lower, n) {
				return true
			}
		}
		return false
	}
	switch {
	case containsAny("new york", "london", "paris", "tokyo"):
		return 8000, 15000
	case containsAny("dubai", "singapore", "sydney"):
		return 6000, 12000
	default:
		return 3000, 8000
	}
}

// SyntheticHotels generates n plausible hotels for a city, one per
// archetype in order.
func (c *AmadeusClient) SyntheticHotels(city string, n int) []HotelOffer {
	return syntheticHotels(c.rand, city, n)
}

func syntheticHotels(rnd Rand, city string, n int) []HotelOffer {
	if n > len(hotelArchetypes) {
		n = len(hotelArchetypes)
	}
	if n <= 0 {
		return nil
	}

	lo, hi := PriceTier(city)
	hotels := make([]HotelOffer, 0, n)
	for _, a := range hotelArchetypes[:n] {
		base := lo + rnd.Intn(hi-lo+1)
		price := int(float64(base)*a.multiplier) + rnd.Intn(1001) - 500
		if price < minSyntheticPrice {
			price = minSyntheticPrice
		}

		hotels = append(hotels, HotelOffer{
			Name:        fmt.Sprintf("%s Hotel %s", a.kind, city),
			Rating:      a.rating + (rnd.Float64()*0.4 - 0.2),
			Price:       Amount(price),
			Currency:    "INR",
			Location:    city + " " + hotelLocationSuffixes[rnd.Intn(len(hotelLocationSuffixes))],
			Description: fmt.Sprintf("Quality %s accommodation in %s", strings.ToLower(a.kind), city),
			Amenities:   append([]string(nil), a.amenities...),
			Synthetic:   true,
		})
	}
	return hotels
}

// MinHotelPrice runs a one-night hotel search for each of the next days
// starting at from and returns the lowest positive nightly price.
func (c *AmadeusClient) MinHotelPrice(ctx context.Context, city string, from time.Time, days int) (float64, bool) {
	var best float64
	found := false
	for i := 0; i < days; i++ {
		if ctx.Err() != nil {
			break
		}
		checkIn := from.AddDate(0, 0, i)
		res := c.SearchHotels(ctx, HotelSearchParams{
			City:     city,
			CheckIn:  checkIn.Format(DateLayout),
			CheckOut: checkIn.AddDate(0, 0, 1).Format(DateLayout),
			Adults:   1,
		})
		for _, h := range res.Hotels {
			price := h.Price.Float()
			if price > 0 && (!found || price < best) {
				best = price
				found = true
			}
		}
	}
	return best, found
}
