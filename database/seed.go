package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"travelplanner/logger"
)

// ─── Models ──────────────────────────────────────────────────────────────────

type SampleFlight struct {
	ID          int64   `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	Airline     string  `json:"airline"`
}

type SampleHotel struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
}

type MinPrice struct {
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	MinFlightPrice float64 `json:"min_flight_price"`
	MinHotelPrice  float64 `json:"min_hotel_price"`
}

// ─── Seeding ─────────────────────────────────────────────────────────────────

// InitSampleData drops and recreates the sample tables and the response
// cache, then loads the seed rows in one transaction. Flight dates are
// relative to now.
func (s *Store) InitSampleData(ctx context.Context, now time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"flights", "hotels", "min_prices", "api_cache"} {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	for _, ddl := range s.seedTableDDL() {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create sample table: %w", err)
		}
	}

	flightStmt, err := tx.PrepareContext(ctx, s.rebind(
		`INSERT INTO flights (origin, destination, price, date, airline) VALUES (?, ?, ?, ?, ?)`))
	if err != nil {
		return err
	}
	defer flightStmt.Close()
	for _, f := range seedFlights {
		date := now.AddDate(0, 0, f.daysAhead).Format("2006-01-02")
		if _, err := flightStmt.ExecContext(ctx, f.origin, f.destination, f.price, date, f.airline); err != nil {
			return fmt.Errorf("failed to insert flight %s-%s: %w", f.origin, f.destination, err)
		}
	}

	hotelStmt, err := tx.PrepareContext(ctx, s.rebind(
		`INSERT INTO hotels (name, location, price_per_night, rating) VALUES (?, ?, ?, ?)`))
	if err != nil {
		return err
	}
	defer hotelStmt.Close()
	for _, h := range seedHotels {
		if _, err := hotelStmt.ExecContext(ctx, h.name, h.location, h.pricePerNight, h.rating); err != nil {
			return fmt.Errorf("failed to insert hotel %s: %w", h.name, err)
		}
	}

	priceStmt, err := tx.PrepareContext(ctx, s.rebind(
		`INSERT INTO min_prices (origin, destination, min_flight_price, min_hotel_price) VALUES (?, ?, ?, ?)`))
	if err != nil {
		return err
	}
	defer priceStmt.Close()
	for _, p := range seedMinPrices {
		if _, err := priceStmt.ExecContext(ctx, p.origin, p.destination, p.minFlightPrice, p.minHotelPrice); err != nil {
			return fmt.Errorf("failed to insert min price %s-%s: %w", p.origin, p.destination, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("Sample data loaded",
		logger.Int("flights", len(seedFlights)),
		logger.Int("hotels", len(seedHotels)),
		logger.Int("min_prices", len(seedMinPrices)))
	return nil
}

// HasSampleData reports whether the flights table holds any rows.
func (s *Store) HasSampleData(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flights`).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ─── Reads ───────────────────────────────────────────────────────────────────

func (s *Store) MinPrices(ctx context.Context, origin, destination string) (*MinPrice, error) {
	p := &MinPrice{}
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT origin, destination, min_flight_price, min_hotel_price
		FROM min_prices WHERE origin = ? AND destination = ?`), origin, destination).
		Scan(&p.Origin, &p.Destination, &p.MinFlightPrice, &p.MinHotelPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SampleFlights lists seed flights, optionally filtered by either end of
// the route. Cheapest first.
func (s *Store) SampleFlights(ctx context.Context, origin, destination string) ([]SampleFlight, error) {
	query := `SELECT id, origin, destination, price, date, airline FROM flights WHERE 1=1`
	var args []any
	if origin != "" {
		query += ` AND origin = ?`
		args = append(args, origin)
	}
	if destination != "" {
		query += ` AND destination = ?`
		args = append(args, destination)
	}
	query += ` ORDER BY price, id`

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := []SampleFlight{}
	for rows.Next() {
		var f SampleFlight
		if err := rows.Scan(&f.ID, &f.Origin, &f.Destination, &f.Price, &f.Date, &f.Airline); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (s *Store) SampleHotels(ctx context.Context, location string) ([]SampleHotel, error) {
	query := `SELECT id, name, location, price_per_night, rating FROM hotels`
	var args []any
	if location != "" {
		query += ` WHERE location = ?`
		args = append(args, location)
	}
	query += ` ORDER BY price_per_night, id`

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := []SampleHotel{}
	for rows.Next() {
		var h SampleHotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &h.PricePerNight, &h.Rating); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}
