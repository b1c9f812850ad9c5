package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Airport struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type CityRecord struct {
	Name     string    `json:"name"`
	CityCode string    `json:"city_code"`
	Country  string    `json:"country"`
	Airports []Airport `json:"airports"`
}

// Cities known to work against the Amadeus test environment.
var cityTable = []CityRecord{
	{Name: "New York", CityCode: "NYC", Country: "United States", Airports: []Airport{
		{"John F. Kennedy", "JFK"}, {"LaGuardia", "LGA"}, {"Newark", "EWR"},
	}},
	{Name: "London", CityCode: "LON", Country: "United Kingdom", Airports: []Airport{
		{"Heathrow", "LHR"}, {"Gatwick", "LGW"}, {"Stansted", "STN"}, {"Luton", "LTN"},
	}},
	{Name: "Paris", CityCode: "PAR", Country: "France", Airports: []Airport{
		{"Charles de Gaulle", "CDG"}, {"Orly", "ORY"}, {"Beauvais Tille", "BVA"},
	}},
	{Name: "Tokyo", CityCode: "TYO", Country: "Japan", Airports: []Airport{
		{"Haneda", "HND"}, {"Narita", "NRT"},
	}},
	{Name: "Sydney", CityCode: "SYD", Country: "Australia", Airports: []Airport{
		{"Kingsford Smith", "SYD"},
	}},
	{Name: "Dubai", CityCode: "DXB", Country: "United Arab Emirates", Airports: []Airport{
		{"Dubai International", "DXB"}, {"Al Maktoum", "DWC"},
	}},
	{Name: "Singapore", CityCode: "SIN", Country: "Singapore", Airports: []Airport{
		{"Changi", "SIN"},
	}},
	{Name: "San Francisco", CityCode: "SFO", Country: "United States", Airports: []Airport{
		{"San Francisco International", "SFO"}, {"Oakland", "OAK"},
	}},
	{Name: "Mumbai", CityCode: "BOM", Country: "India", Airports: []Airport{
		{"Chhatrapati Shivaji", "BOM"},
	}},
	{Name: "Delhi", CityCode: "DEL", Country: "India", Airports: []Airport{
		{"Indira Gandhi", "DEL"},
	}},
}

var cityIndex = func() map[string]int {
	m := make(map[string]int, len(cityTable))
	for i, c := range cityTable {
		m[c.Name] = i
	}
	return m
}()

// NormalizeCityName turns free-form input like "paris - CDG" or
// "new york, usa" into the table's key form ("Paris", "New York").
func NormalizeCityName(name string) string {
	if i := strings.Index(name, " - "); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, ","); i >= 0 {
		name = name[:i]
	}
	name = strings.Join(strings.Fields(name), " ")
	// cases.Caser keeps state, so one per call
	return cases.Title(language.English).String(name)
}

// CityPart drops a ", Country" suffix and keeps the caller's casing.
func CityPart(s string) string {
	name, _, _ := strings.Cut(s, ",")
	return strings.TrimSpace(name)
}

// ResolveCity looks the name up in the static table.
func ResolveCity(name string) (CityRecord, bool) {
	i, ok := cityIndex[NormalizeCityName(name)]
	if !ok {
		return CityRecord{}, false
	}
	return cityTable[i], true
}

func AvailableCities() []CityRecord {
	out := make([]CityRecord, len(cityTable))
	copy(out, cityTable)
	return out
}

// AirportCodes returns the airport codes of a known city in table order.
func AirportCodes(name string) []string {
	city, ok := ResolveCity(name)
	if !ok {
		return nil
	}
	codes := make([]string, 0, len(city.Airports))
	for _, a := range city.Airports {
		codes = append(codes, a.Code)
	}
	return codes
}

// FormatCity renders "Name, Country", or "" for an unknown city.
func FormatCity(name string) string {
	city, ok := ResolveCity(name)
	if !ok {
		return ""
	}
	return city.Name + ", " + city.Country
}
