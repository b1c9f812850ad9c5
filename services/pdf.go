package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type ItineraryPDF struct {
	TravelerName string
	Origin       string
	Destination  string
	StartDate    string
	EndDate      string
	Flight       FlightOffer
	Hotel        HotelOffer
	Nights       int
	Total        float64
	Estimated    bool
	Notes        string
	GeneratedAt  time.Time
}

// TripNights counts the nights between two YYYY-MM-DD dates, at least one.
func TripNights(start, end string) int {
	s, err1 := time.Parse(DateLayout, start)
	e, err2 := time.Parse(DateLayout, end)
	if err1 != nil || err2 != nil {
		return 1
	}
	n := int(e.Sub(s).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// TripTotal is the flight fare plus the hotel's nightly rate for every night.
func TripTotal(flight FlightOffer, hotel HotelOffer, nights int) float64 {
	return flight.Price.Float() + hotel.Price.Float()*float64(nights)
}

// GeneratePDFBytes renders the itinerary into an A4 PDF held in memory.
func GeneratePDFBytes(data ItineraryPDF) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; translate everything we print
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now()
	}

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(16, 42, 67)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Travel Planner", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(255, 183, 77)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Trip Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(255, 183, 77)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	disclaimer := "This is NOT a booking confirmation. Prices are indicative and subject to change. Please verify with providers before booking."
	if data.Estimated {
		disclaimer = "ESTIMATED PRICES: live fares or hotel offers were unavailable. This is NOT a booking confirmation. Verify all prices before booking."
	}
	pdf.MultiCell(164, 4, tr(disclaimer), "", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(16, 42, 67)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, tr(value), "", 1, "L", false, 0, "")
	}

	// ── Traveler Info ─────────────────────────────────────────
	sectionHeader("Traveler Information")
	name := data.TravelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Name", name)
	row("Generated", data.GeneratedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Route", fmt.Sprintf("%s - %s", data.Origin, data.Destination))
	row("Start", fmtDateReadable(data.StartDate))
	row("End", fmtDateReadable(data.EndDate))
	row("Duration", fmt.Sprintf("%d night(s)", data.Nights))
	pdf.Ln(4)

	// ── Selected Flight ───────────────────────────────────────
	sectionHeader("Selected Flight")
	f := data.Flight
	row("Airline", fmt.Sprintf("%s (%s)", AirlineName(f.Airline), f.FlightNumber))
	row("From", fmt.Sprintf("%s at %s", f.DepartureAirport, fmtTimestamp(f.DepartureTime)))
	row("To", fmt.Sprintf("%s at %s", f.ArrivalAirport, fmtTimestamp(f.ArrivalTime)))
	row("Duration", HumanDuration(f.Duration))
	row("Fare", pdfMoney(f.Price.Float(), f.Currency))
	pdf.Ln(4)

	// ── Selected Hotel ────────────────────────────────────────
	sectionHeader("Selected Hotel")
	h := data.Hotel
	row("Hotel", h.Name)
	row("Location", h.Location)
	row("Rating", fmt.Sprintf("%.1f / 5.0", h.Rating))
	if len(h.Amenities) > 0 {
		row("Amenities", strings.Join(h.Amenities, ", "))
	}
	row("Check-in", fmtDateReadable(data.StartDate))
	row("Check-out", fmtDateReadable(data.EndDate))
	row("Price", fmt.Sprintf("%s/night x %d = %s",
		pdfMoney(h.Price.Float(), h.Currency), data.Nights,
		pdfMoney(h.Price.Float()*float64(data.Nights), h.Currency)))
	pdf.Ln(4)

	// ── Cost Summary ──────────────────────────────────────────
	sectionHeader("Cost Estimate")
	currency := f.Currency
	if currency == "" {
		currency = h.Currency
	}
	row("Flight", pdfMoney(f.Price.Float(), f.Currency))
	row("Hotel total", pdfMoney(h.Price.Float()*float64(data.Nights), h.Currency))

	pdf.SetFillColor(255, 183, 77)
	pdf.SetTextColor(16, 42, 67)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, tr(pdfMoney(data.Total, currency)), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if data.Notes != "" {
		sectionHeader("Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, tr(data.Notes), "", "L", false)
		pdf.Ln(4)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Travel Planner - Not a booking confirmation - Prices subject to change",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse(DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}

func fmtTimestamp(ts string) string {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("02 Jan 15:04")
		}
	}
	return ts
}

// pdfMoney spells the currency as its code; the rupee sign has no cp1252
// glyph.
func pdfMoney(amount float64, currency string) string {
	if currency == "" {
		currency = "INR"
	}
	return message.NewPrinter(language.English).Sprintf("%s %.0f", currency, amount)
}
