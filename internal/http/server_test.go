package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptransport "tripcast/internal/http"
	"tripcast/internal/modules/itinerary"
)

type panickingService struct{}

func (panickingService) Create(context.Context, string, itinerary.CreateCommand) (*itinerary.Itinerary, error) {
	panic("unreachable state")
}

func (panickingService) Get(context.Context, int64) (*itinerary.Itinerary, error) {
	return nil, itinerary.ErrNotFound
}

func (panickingService) List(context.Context) ([]itinerary.Itinerary, error) {
	return []itinerary.Itinerary{}, nil
}

func (panickingService) QuotaRemaining(context.Context, string) (int64, bool) { return 0, false }

// clientRecorder records the client key each create is charged to.
type clientRecorder struct {
	panickingService
	clients []string
}

func (r *clientRecorder) Create(_ context.Context, client string, _ itinerary.CreateCommand) (*itinerary.Itinerary, error) {
	r.clients = append(r.clients, client)
	return &itinerary.Itinerary{ID: int64(len(r.clients))}, nil
}

func postFrom(h http.Handler, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/itinerary/", strings.NewReader(`{"destination":"Rome","date":"2026-05-01"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func newTestServer() http.Handler {
	gin.SetMode(gin.TestMode)
	return httptransport.NewServer(httptransport.ServerDeps{
		Itineraries: panickingService{},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).Routes()
}

func TestForwardedForIgnoredByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &clientRecorder{}
	h := httptransport.NewServer(httptransport.ServerDeps{
		Itineraries: rec,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).Routes()

	for _, xff := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		require.Equal(t, http.StatusCreated, postFrom(h, "9.9.9.9:4321", xff).Code)
	}
	assert.Equal(t, []string{"9.9.9.9", "9.9.9.9", "9.9.9.9"}, rec.clients)
}

func TestForwardedForFromTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &clientRecorder{}
	h := httptransport.NewServer(httptransport.ServerDeps{
		Itineraries:    rec,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		TrustedProxies: []string{"10.0.0.0/8"},
	}).Routes()

	require.Equal(t, http.StatusCreated, postFrom(h, "10.1.2.3:4321", "1.1.1.1").Code)
	require.Equal(t, http.StatusCreated, postFrom(h, "9.9.9.9:4321", "2.2.2.2").Code)
	assert.Equal(t, []string{"1.1.1.1", "9.9.9.9"}, rec.clients)
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRoutes(t *testing.T) {
	h := newTestServer()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/itineraries/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/itinerary/1/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecoveryReturnsJSON(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/itinerary/", strings.NewReader(`{"destination":"Rome","date":"2026-05-01"}`))
	req.Header.Set("Content-Type", "application/json")
	newTestServer().ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unexpected error: unreachable state", body["error"])
}
