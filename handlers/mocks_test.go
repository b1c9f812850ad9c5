package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travelplanner/config"
	"travelplanner/database"
	"travelplanner/logger"
	"travelplanner/services"
)

type MockTravelService struct {
	mock.Mock
}

func (m *MockTravelService) SearchLocations(ctx context.Context, keyword string) []services.LocationSuggestion {
	args := m.Called(ctx, keyword)
	return args.Get(0).([]services.LocationSuggestion)
}

func (m *MockTravelService) SearchFlights(ctx context.Context, p services.FlightSearchParams) services.FlightSearchResult {
	args := m.Called(ctx, p)
	return args.Get(0).(services.FlightSearchResult)
}

func (m *MockTravelService) SearchHotels(ctx context.Context, p services.HotelSearchParams) services.HotelSearchResult {
	args := m.Called(ctx, p)
	return args.Get(0).(services.HotelSearchResult)
}

func (m *MockTravelService) FlightStatus(ctx context.Context, carrierCode, flightNumber, date string) (*services.FlightStatus, bool) {
	args := m.Called(ctx, carrierCode, flightNumber, date)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*services.FlightStatus), args.Bool(1)
}

func (m *MockTravelService) MinHotelPrice(ctx context.Context, city string, from time.Time, days int) (float64, bool) {
	args := m.Called(ctx, city, from, days)
	return args.Get(0).(float64), args.Bool(1)
}

type MockChatbot struct {
	mock.Mock
}

func (m *MockChatbot) Reply(ctx context.Context, req services.ChatRequest) string {
	return m.Called(ctx, req).String(0)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) MinPrices(ctx context.Context, origin, destination string) (*database.MinPrice, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.MinPrice), args.Error(1)
}

func (m *MockStore) SampleFlights(ctx context.Context, origin, destination string) ([]database.SampleFlight, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.SampleFlight), args.Error(1)
}

func (m *MockStore) SampleHotels(ctx context.Context, location string) ([]database.SampleHotel, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.SampleHotel), args.Error(1)
}

func (m *MockStore) SaveItinerary(ctx context.Context, i *database.Itinerary) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockStore) GetItinerary(ctx context.Context, id string) (*database.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Itinerary), args.Error(1)
}

func (m *MockStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	travel *MockTravelService
	bot    *MockChatbot
	store  *MockStore
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	for _, name := range []string{"index.html", "login.html", "signup.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("<html>"+name+"</html>"), 0o644))
	}

	cfg := config.Default()
	cfg.Server.TemplatesDir = dir
	cfg.Server.StaticDir = dir

	env := &testEnv{travel: &MockTravelService{}, bot: &MockChatbot{}, store: &MockStore{}}
	h := NewHandler(env.travel, env.bot, env.store, cfg, logger.Nop())
	h.now = func() time.Time { return testNow }
	h.newID = func() string { return "itin-1" }
	env.router = NewRouter(cfg, h, logger.Nop())
	return env
}

func (e *testEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
