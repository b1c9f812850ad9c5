package database

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type Itinerary struct {
	ID           string    `json:"id"`
	TravelerName string    `json:"traveler_name"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	FlightJSON   string    `json:"flight_json"`
	HotelJSON    string    `json:"hotel_json"`
	PDFData      []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

func (s *Store) SaveItinerary(ctx context.Context, i *Itinerary) error {
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO itineraries (id, traveler_name, origin, destination, start_date, end_date,
			flight_json, hotel_json, pdf_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		i.ID, i.TravelerName, i.Origin, i.Destination, i.StartDate, i.EndDate,
		i.FlightJSON, i.HotelJSON, i.PDFData, i.CreatedAt.Unix())
	return err
}

func (s *Store) GetItinerary(ctx context.Context, id string) (*Itinerary, error) {
	i := &Itinerary{}
	var traveler, flight, hotel sql.NullString
	var created int64
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, traveler_name, origin, destination, start_date, end_date,
			flight_json, hotel_json, pdf_data, created_at
		FROM itineraries WHERE id = ?`), id).
		Scan(&i.ID, &traveler, &i.Origin, &i.Destination, &i.StartDate, &i.EndDate,
			&flight, &hotel, &i.PDFData, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	i.TravelerName = traveler.String
	i.FlightJSON = flight.String
	i.HotelJSON = hotel.String
	i.CreatedAt = time.Unix(created, 0)
	return i, nil
}
