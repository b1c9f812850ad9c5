package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"travelplanner/logger"
)

type Intent int

const (
	IntentGeneral Intent = iota
	IntentFlight
	IntentHotel
)

func (i Intent) String() string {
	switch i {
	case IntentFlight:
		return "flight"
	case IntentHotel:
		return "hotel"
	default:
		return "general"
	}
}

var (
	flightWords = []string{"flight", "airline", "fly", "flying", "airport"}
	hotelWords  = []string{"hotel", "accommodation", "stay", "lodging", "room"}
)

// ClassifyIntent picks the branch for a chat message. Flight words win
// over hotel words.
func ClassifyIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, w := range flightWords {
		if strings.Contains(lower, w) {
			return IntentFlight
		}
	}
	for _, w := range hotelWords {
		if strings.Contains(lower, w) {
			return IntentHotel
		}
	}
	return IntentGeneral
}

// Canned replies
const (
	msgNeedFlightDestination = "Please specify a destination to search for flights."
	msgNeedOrigin            = "Please specify an origin city to search for flights."
	msgNeedHotelDestination  = "Please specify a destination to search for hotels."
	msgMissingKey            = "API key is missing. Please check your configuration."
	msgUpstreamStatus        = "Sorry, I'm having trouble connecting to my knowledge base. Please try again."
	msgNetwork               = "Sorry, I encountered a network error. Please check your connection and try again."
	msgNoCandidates          = "I couldn't generate a response. Please try again with a different question."
	msgUnexpected            = "Sorry, I encountered an unexpected error. Please try again."

	followUpInstruction = "\n\nPlease provide a complete, detailed response of at least 200 words."
)

type FlightSearcher interface {
	SearchFlights(ctx context.Context, p FlightSearchParams) FlightSearchResult
}

type HotelSearcher interface {
	SearchHotels(ctx context.Context, p HotelSearchParams) HotelSearchResult
}

type TextGenerator interface {
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatRequest carries the message plus whatever trip context the page
// already knows.
type ChatRequest struct {
	Message     string
	Origin      string
	Destination string
	StartDate   string
	EndDate     string
}

type Assistant struct {
	flights FlightSearcher
	hotels  HotelSearcher
	llm     TextGenerator
	now     func() time.Time
	logger  *logger.Logger
}

func NewAssistant(flights FlightSearcher, hotels HotelSearcher, llm TextGenerator, log *logger.Logger) *Assistant {
	return &Assistant{
		flights: flights,
		hotels:  hotels,
		llm:     llm,
		now:     time.Now,
		logger:  log.Named("assistant"),
	}
}

// Reply always produces a user-facing HTML-ish string; failures become
// apologetic messages instead of errors.
func (a *Assistant) Reply(ctx context.Context, req ChatRequest) string {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)

	switch ClassifyIntent(req.Message) {
	case IntentFlight:
		return a.flightReply(ctx, req)
	case IntentHotel:
		return a.hotelReply(ctx, req)
	default:
		return a.generalReply(ctx, req)
	}
}

func (a *Assistant) flightReply(ctx context.Context, req ChatRequest) string {
	if req.Destination == "" {
		return msgNeedFlightDestination
	}
	if req.Origin == "" {
		return msgNeedOrigin
	}

	originName := CityPart(req.Origin)
	destName := CityPart(req.Destination)
	originCodes := AirportCodes(originName)
	destCodes := AirportCodes(destName)
	if len(originCodes) == 0 || len(destCodes) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find airport information for %s or %s.", originName, destName)
	}

	departure := req.StartDate
	if departure == "" {
		departure = a.now().Format(DateLayout)
	}

	res := a.flights.SearchFlights(ctx, FlightSearchParams{
		Origin:        originCodes[0],
		Destination:   destCodes[0],
		DepartureDate: departure,
		Adults:        1,
		Currency:      "INR",
	})
	if len(res.Flights) == 0 {
		return fmt.Sprintf("I don't have any flight information available from %s to %s at the moment.", originName, destName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the available flights from %s to %s:<br><br>", originName, destName)
	for i, f := range res.Flights {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "• <strong>%s %s</strong>: %s - Departure: %s<br>",
			f.Airline, f.FlightNumber, FormatPrice(f.Price.Float(), "INR"), departureClock(f.DepartureTime))
	}
	if res.Degraded {
		b.WriteString("<br><em>Live fares are unavailable right now, so these are estimated fares.</em>")
	}
	return b.String()
}

func (a *Assistant) hotelReply(ctx context.Context, req ChatRequest) string {
	if req.Destination == "" {
		return msgNeedHotelDestination
	}

	city := CityPart(req.Destination)
	today := a.now()
	checkIn := req.StartDate
	if checkIn == "" {
		checkIn = today.Format(DateLayout)
	}
	checkOut := req.EndDate
	if checkOut == "" {
		checkOut = today.AddDate(0, 0, 2).Format(DateLayout)
	}

	res := a.hotels.SearchHotels(ctx, HotelSearchParams{
		City:     city,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   1,
	})
	if len(res.Hotels) == 0 {
		return fmt.Sprintf("I don't have any hotel information available for %s at the moment.", city)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the available hotels in %s:<br><br>", city)
	for i, h := range res.Hotels {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "• <strong>%s</strong>: %s/night - Rating: %.1f/5<br>",
			h.Name, FormatPrice(h.Price.Float(), "INR"), h.Rating)
	}
	return b.String()
}

func (a *Assistant) generalReply(ctx context.Context, req ChatRequest) string {
	if !a.llm.Configured() {
		return msgMissingKey
	}

	prompt := buildTravelPrompt(req)
	text, err := a.llm.Generate(ctx, prompt)
	if err != nil {
		a.logger.Error("Gemini request failed", logger.Error(err))
		return generationFailureMessage(err)
	}

	answer := FormatAssistantText(text)
	if looksTruncated(answer) {
		a.logger.Debug("Answer looks truncated, asking for a complete one",
			logger.Int("length", utf8.RuneCountInString(answer)))
		more, err := a.llm.Generate(ctx, prompt+followUpInstruction)
		if err != nil {
			a.logger.Warn("Follow-up request failed, keeping first answer", logger.Error(err))
			return answer
		}
		answer = FormatAssistantText(more)
	}
	return answer
}

func generationFailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrGeminiNotConfigured):
		return msgMissingKey
	case errors.Is(err, ErrGeminiStatus):
		return msgUpstreamStatus
	case errors.Is(err, ErrGeminiEmpty):
		return msgNoCandidates
	case errors.Is(err, ErrGeminiDecode):
		return msgUnexpected
	default:
		return msgNetwork
	}
}

func buildTravelPrompt(req ChatRequest) string {
	destination := req.Destination
	if destination == "" {
		destination = "Not specified"
	}
	endDate := req.EndDate
	if endDate == "" {
		endDate = "Not specified"
	}

	dateContext := ""
	if req.StartDate != "" && req.EndDate != "" {
		dateContext = fmt.Sprintf("\nThe user is planning to visit from %s to %s. Please consider this date range when providing travel advice, especially for seasonal activities, weather, and events.",
			req.StartDate, req.EndDate)
	}

	return fmt.Sprintf(`You are a friendly and expert AI travel assistant for a travel planning platform.
Your user is planning a trip with the following details:
- Destination: %s
- Travel Dates: %s to %s

Your primary goal is to provide helpful, detailed, and practical travel advice.
- Focus on the Indian travel context (e.g., visa requirements, cultural tips, pricing in INR ₹).
- If asked for an itinerary, provide a clear, day-by-day plan with specific suggestions for activities, sights, and food.
- Be conversational and engaging, but keep your answers informative and well-structured.
- If the destination is not specified, ask the user where they would like to go.
- Format your response properly with clear paragraphs and bullet points where appropriate.
- Provide detailed, comprehensive answers rather than brief responses, unless the question is straightforward.

%s

User's question: "%s"

Please provide a detailed, helpful response that addresses their question thoroughly.`,
		destination, req.StartDate, endDate, dateContext, req.Message)
}

// FormatAssistantText converts the model's markdown-ish output into the
// markup the chat widget renders: **bold** pairs become <strong>, stray
// asterisks become bullets and newlines become <br>.
func FormatAssistantText(s string) string {
	parts := strings.Split(s, "**")
	var b strings.Builder
	for i, p := range parts {
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString("<strong>")
			b.WriteString(p)
			b.WriteString("</strong>")
			continue
		}
		// an unpaired trailing marker is dropped
		b.WriteString(p)
	}

	out := strings.ReplaceAll(b.String(), "*", "•")
	out = strings.ReplaceAll(out, "\n\n", "<br><br>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return out
}

func looksTruncated(s string) bool {
	t := strings.TrimSpace(s)
	return utf8.RuneCountInString(t) < 100 || strings.HasSuffix(t, "•") || strings.HasSuffix(t, ",")
}

func departureClock(ts string) string {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339, "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("15:04")
		}
	}
	return "N/A"
}
