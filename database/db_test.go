package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/config"
	"travelplanner/logger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")}
	s, err := Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: dialectPostgres}
	lite := &Store{dialect: dialectSQLite}

	q := `SELECT * FROM t WHERE a = ? AND b = ?`
	assert.Equal(t, `SELECT * FROM t WHERE a = $1 AND b = $2`, pg.rebind(q))
	assert.Equal(t, q, lite.rebind(q))
}

func TestIsPostgresURL(t *testing.T) {
	assert.True(t, isPostgresURL("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresURL("postgresql://localhost/db"))
	assert.False(t, isPostgresURL("travel_planner.db"))
	assert.False(t, isPostgresURL(""))
}

func TestInitSampleData(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	has, err := s.HasSampleData(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.InitSampleData(ctx, now))

	has, err = s.HasSampleData(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	all, err := s.SampleFlights(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, len(seedFlights))

	// running it twice replaces rather than appends
	require.NoError(t, s.InitSampleData(ctx, now))
	all, err = s.SampleFlights(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, len(seedFlights))
}

func TestSampleFlights_Filtered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InitSampleData(ctx, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))

	flights, err := s.SampleFlights(ctx, "New York", "Paris")
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "Air France", flights[0].Airline)
	assert.Equal(t, 450.0, flights[0].Price)
	assert.Equal(t, "2025-03-08", flights[0].Date)

	fromParis, err := s.SampleFlights(ctx, "Paris", "")
	require.NoError(t, err)
	require.NotEmpty(t, fromParis)
	for i, f := range fromParis {
		assert.Equal(t, "Paris", f.Origin)
		if i > 0 {
			assert.LessOrEqual(t, fromParis[i-1].Price, f.Price)
		}
	}

	none, err := s.SampleFlights(ctx, "Atlantis", "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSampleHotels(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InitSampleData(ctx, time.Now()))

	want := 0
	for _, h := range seedHotels {
		if h.location == "Paris" {
			want++
		}
	}

	hotels, err := s.SampleHotels(ctx, "Paris")
	require.NoError(t, err)
	assert.Len(t, hotels, want)
	assert.Equal(t, "Grand Plaza Paris", hotels[0].Name)
	assert.Equal(t, 200.0, hotels[0].PricePerNight)

	all, err := s.SampleHotels(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(seedHotels))
}

func TestMinPrices(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InitSampleData(ctx, time.Now()))

	p, err := s.MinPrices(ctx, "New York", "Paris")
	require.NoError(t, err)
	assert.Equal(t, 450.0, p.MinFlightPrice)
	assert.Equal(t, 180.0, p.MinHotelPrice)

	_, err = s.MinPrices(ctx, "Paris", "Paris")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAPICache(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	c := NewAPICache(s)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, ok, err := c.Get(ctx, "par", "locations")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "par", "locations", []byte(`[{"name":"PARIS"}]`), time.Hour))
	data, ok, err := c.Get(ctx, "par", "locations")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"name":"PARIS"}]`, string(data))

	// same key, other type
	_, ok, err = c.Get(ctx, "par", "city_code")
	require.NoError(t, err)
	assert.False(t, ok)

	// upsert replaces the payload
	require.NoError(t, c.Set(ctx, "par", "locations", []byte(`[]`), time.Hour))
	data, _, err = c.Get(ctx, "par", "locations")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	now = now.Add(2 * time.Hour)
	_, ok, err = c.Get(ctx, "par", "locations")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := c.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestItineraries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	in := &Itinerary{
		ID:           "it-1",
		TravelerName: "Asha Rao",
		Origin:       "Delhi",
		Destination:  "Paris",
		StartDate:    "2025-03-01",
		EndDate:      "2025-03-04",
		FlightJSON:   `{"airline":"AI"}`,
		HotelJSON:    `{"name":"Grand Hotel Paris"}`,
		PDFData:      []byte("%PDF-1.3 test"),
		CreatedAt:    created,
	}
	require.NoError(t, s.SaveItinerary(ctx, in))

	got, err := s.GetItinerary(ctx, "it-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.TravelerName)
	assert.Equal(t, "Paris", got.Destination)
	assert.Equal(t, in.PDFData, got.PDFData)
	assert.True(t, created.Equal(got.CreatedAt))

	_, err = s.GetItinerary(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	// duplicate ids are rejected
	assert.Error(t, s.SaveItinerary(ctx, in))
}

func TestAPICache_PurgeLoop(t *testing.T) {
	s := openTestStore(t)
	c := NewAPICache(s)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	bg := context.Background()
	require.NoError(t, c.Set(bg, "old", "locations", []byte(`[]`), time.Minute))
	require.NoError(t, c.Set(bg, "fresh", "locations", []byte(`[]`), 24*time.Hour))
	now = now.Add(time.Hour)

	ctx, cancel := context.WithCancel(bg)
	done := make(chan struct{})
	go func() {
		c.PurgeLoop(ctx, time.Hour, logger.Nop())
		close(done)
	}()

	countRows := func() int {
		var n int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM api_cache`).Scan(&n); err != nil {
			return -1
		}
		return n
	}
	assert.Eventually(t, func() bool { return countRows() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("purge loop did not stop after cancel")
	}

	_, ok, err := c.Get(bg, "fresh", "locations")
	require.NoError(t, err)
	assert.True(t, ok)
}
