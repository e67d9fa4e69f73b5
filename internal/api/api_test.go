// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/database"
	"github.com/tomtom215/galleria/internal/models"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
	"github.com/tomtom215/galleria/internal/spatial/spatialtest"
	"github.com/tomtom215/galleria/internal/tour"
)

// contentFixture serves the two-room building with one artwork per room.
type contentFixture struct{}

func (contentFixture) BuildingGeometry(_ context.Context, id string) (spatial.RawGeometry, error) {
	raw := spatialtest.TwoRooms().Raw()
	if id != raw.BuildingID {
		return spatial.RawGeometry{}, fmt.Errorf("building %q: %w", id, spatial.ErrBuildingNotFound)
	}
	return raw, nil
}

func (contentFixture) ArtworksForProfile(_ context.Context, _ string, p museum.Profile) ([]museum.Artwork, error) {
	all := []museum.Artwork{
		{ID: "a1", Title: "Portrait", Materials: "oil on canvas", Narration: "a face",
			Position: spatial.Position{X: 100, Y: 100, Room: "A"}, Criteria: museum.NewProfile(map[string]string{"age": "adult"})},
		{ID: "b1", Title: "Bust", Materials: "marble", Narration: "a head",
			Position: spatial.Position{X: 300, Y: 100, Room: "B"}, Criteria: museum.NewProfile(map[string]string{"age": "adult"})},
	}
	return museum.FilterByProfile(all, p), nil
}

func (contentFixture) CriteriaCatalog(context.Context) (museum.Catalog, error) {
	return museum.Catalog{Categories: []museum.Category{{ID: "age", Options: []string{"adult", "child"}}}}, nil
}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	engine, err := tour.NewEngine(tour.DefaultConfig(), tour.Sources{
		Geometry: contentFixture{},
		Artworks: contentFixture{},
		Catalog:  contentFixture{},
	}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return routerFor(NewHandler(engine, nil, nil, "test"))
}

func routerFor(h *Handler) http.Handler {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	cfg.CORSAllowedOrigins = []string{"https://museum.example"}
	return NewRouter(h, NewChiMiddleware(cfg)).SetupChi()
}

// envelope mirrors models.APIResponse with a raw data payload.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: body %q is not an envelope: %v", method, path, rec.Body.String(), err)
	}
	return rec, env
}

func TestCreateTour(t *testing.T) {
	t.Parallel()

	h := setupRouter(t)
	rec, env := do(t, h, http.MethodPost, "/api/v1/buildings/two-rooms/tours",
		`{"profile": {"age": "adult"}, "duration_minutes": 20, "seed": 3}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if env.Status != "success" || env.Metadata.RequestID == "" {
		t.Errorf("envelope = %+v", env)
	}
	if rec.Header().Get("X-Request-ID") != env.Metadata.RequestID {
		t.Error("X-Request-ID header does not match metadata")
	}

	var got tour.Tour
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode tour: %v", err)
	}
	if !got.Available || len(got.Stops) != 2 {
		t.Errorf("tour available=%v stops=%d", got.Available, len(got.Stops))
	}
	if got.Seed == nil || *got.Seed != 3 {
		t.Errorf("seed = %v, want 3", got.Seed)
	}
	if got.Mode != connectivity.ModeAny {
		t.Errorf("mode = %q, want any", got.Mode)
	}
}

func TestCreateTour_Unavailable(t *testing.T) {
	t.Parallel()

	h := setupRouter(t)
	rec, env := do(t, h, http.MethodPost, "/api/v1/buildings/two-rooms/tours",
		`{"profile": {"age": "child"}, "duration_minutes": 20}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got tour.Tour
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode tour: %v", err)
	}
	if got.Available || got.Reason != tour.ReasonNoCandidates {
		t.Errorf("available=%v reason=%q", got.Available, got.Reason)
	}
}

func TestCreateTour_Errors(t *testing.T) {
	t.Parallel()

	h := setupRouter(t)
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"malformed", "/api/v1/buildings/two-rooms/tours", `{"profile":`, 400, models.ErrCodeValidation},
		{"unknown field", "/api/v1/buildings/two-rooms/tours", `{"profile":{"age":"adult"},"duration_minutes":5,"speed":2}`, 400, models.ErrCodeValidation},
		{"empty profile", "/api/v1/buildings/two-rooms/tours", `{"profile":{},"duration_minutes":5}`, 400, models.ErrCodeValidation},
		{"zero duration", "/api/v1/buildings/two-rooms/tours", `{"profile":{"age":"adult"},"duration_minutes":0}`, 400, models.ErrCodeValidation},
		{"bad mode", "/api/v1/buildings/two-rooms/tours", `{"profile":{"age":"adult"},"duration_minutes":5,"mode":"fly"}`, 400, models.ErrCodeValidation},
		{"unknown option", "/api/v1/buildings/two-rooms/tours", `{"profile":{"age":"elder"},"duration_minutes":5}`, 400, models.ErrCodeProfile},
		{"unknown category", "/api/v1/buildings/two-rooms/tours", `{"profile":{"era":"baroque"},"duration_minutes":5}`, 400, models.ErrCodeProfile},
		{"unknown building", "/api/v1/buildings/nowhere/tours", `{"profile":{"age":"adult"},"duration_minutes":5}`, 404, models.ErrCodeNotFound},
		{"bad building id", "/api/v1/buildings/a%20b/tours", `{"profile":{"age":"adult"},"duration_minutes":5}`, 400, models.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, http.MethodPost, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			if env.Status != "error" || env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want code %s", env.Error, tt.code)
			}
		})
	}
}

func TestRoute(t *testing.T) {
	t.Parallel()

	h := setupRouter(t)
	rec, env := do(t, h, http.MethodPost, "/api/v1/buildings/two-rooms/route",
		`{"from": {"x": 100, "y": 100, "room": "A"}, "to": {"x": 300, "y": 100, "room": "B"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got models.RouteResponse
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode route: %v", err)
	}
	if !got.Reachable || got.DistanceMeters == nil || *got.DistanceMeters <= 0 {
		t.Errorf("route = %+v", got)
	}
	if len(got.Waypoints) != 1 || got.Waypoints[0].Type != "door" || got.Waypoints[0].EntityID != "d1" {
		t.Errorf("waypoints = %+v", got.Waypoints)
	}
}

func TestRoute_Unreachable(t *testing.T) {
	t.Parallel()

	// Rooms the building does not have are unreachable, not an error.
	tests := []struct {
		name string
		body string
	}{
		{"unknown destination", `{"from": {"x": 100, "y": 100, "room": "A"}, "to": {"x": 0, "y": 0, "room": "Z"}}`},
		{"unknown room both ends", `{"from": {"x": 0, "y": 0, "room": "nope"}, "to": {"x": 100, "y": 0, "room": "nope"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := setupRouter(t)
			rec, env := do(t, h, http.MethodPost, "/api/v1/buildings/two-rooms/route", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(string(env.Data), `"distance_meters":null`) {
				t.Errorf("data = %s, want null distance", env.Data)
			}
			var got models.RouteResponse
			if err := json.Unmarshal(env.Data, &got); err != nil {
				t.Fatalf("decode route: %v", err)
			}
			if got.Reachable {
				t.Error("Reachable = true, want false")
			}
		})
	}
}

func TestBuildingGraph(t *testing.T) {
	t.Parallel()

	h := setupRouter(t)
	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/buildings/two-rooms/graph"},
		{http.MethodPost, "/api/v1/buildings/two-rooms/graph/refresh"},
	} {
		rec, env := do(t, h, req.method, req.path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s status = %d", req.method, req.path, rec.Code)
		}
		var got spatial.Summary
		if err := json.Unmarshal(env.Data, &got); err != nil {
			t.Fatalf("decode summary: %v", err)
		}
		if got.Rooms != 2 || got.Doors != 1 {
			t.Errorf("%s summary = %+v", req.path, got)
		}
	}
}

func TestCriteria(t *testing.T) {
	t.Parallel()

	h := setupRouter(t)
	rec, env := do(t, h, http.MethodGet, "/api/v1/criteria", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got models.CriteriaResponse
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode criteria: %v", err)
	}
	if len(got.Categories) != 1 || got.Categories[0].ID != "age" || len(got.Categories[0].Options) != 2 {
		t.Errorf("criteria = %+v", got)
	}
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	t.Parallel()

	h := setupRouter(t)
	rec, env := do(t, h, http.MethodGet, "/api/v1/nothing", "")
	if rec.Code != http.StatusNotFound || env.Error.Code != models.ErrCodeNotFound {
		t.Errorf("unknown path: %d %+v", rec.Code, env.Error)
	}
	rec, env = do(t, h, http.MethodGet, "/api/v1/buildings/two-rooms/tours", "")
	if rec.Code != http.StatusMethodNotAllowed || env.Error.Code != models.ErrCodeMethodNotAllowed {
		t.Errorf("wrong method: %d %+v", rec.Code, env.Error)
	}
}

func TestRouter_SecurityHeadersAndCORS(t *testing.T) {
	t.Parallel()

	h := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/criteria", nil)
	req.Header.Set("Origin", "https://museum.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://museum.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	h := setupRouter(t)
	do(t, h, http.MethodGet, "/api/v1/criteria", "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `galleria_api_requests_total{method="GET",route="/api/v1/criteria",status="200"}`) {
		t.Error("metrics output lacks the criteria request series")
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	engine, err := tour.NewEngine(tour.DefaultConfig(), tour.Sources{
		Geometry: contentFixture{}, Artworks: contentFixture{}, Catalog: contentFixture{},
	}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	h := NewRouter(NewHandler(engine, nil, nil, "test"), NewChiMiddleware(cfg)).SetupChi()

	var last *httptest.ResponseRecorder
	var env envelope
	for i := 0; i < 3; i++ {
		last, env = do(t, h, http.MethodGet, "/api/v1/criteria", "")
	}
	if last.Code != http.StatusTooManyRequests || env.Error.Code != models.ErrCodeRateLimited {
		t.Errorf("third request: %d %+v", last.Code, env.Error)
	}
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	cfg.MaxBodyBytes = 32
	h := NewRouter(NewHandler(stubEngine{}, nil, nil, "test"), NewChiMiddleware(cfg)).SetupChi()

	body := `{"profile": {"age": "` + strings.Repeat("a", 64) + `"}, "duration_minutes": 5}`
	rec, env := do(t, h, http.MethodPost, "/api/v1/buildings/two-rooms/tours", body)
	if rec.Code != http.StatusRequestEntityTooLarge || env.Error.Code != models.ErrCodeValidation {
		t.Errorf("oversized body: %d %+v", rec.Code, env.Error)
	}
}

// stubEngine fails every call with err.
type stubEngine struct{ err error }

func (s stubEngine) Generate(context.Context, tour.Request) (*tour.Tour, error) { return nil, s.err }
func (s stubEngine) Route(context.Context, string, spatial.Position, spatial.Position, connectivity.Mode) (connectivity.Route, error) {
	return connectivity.Route{}, s.err
}
func (s stubEngine) GraphSummary(context.Context, string) (spatial.Summary, error) {
	return spatial.Summary{}, s.err
}
func (s stubEngine) Refresh(context.Context, string) (*spatial.Graph, error) { return nil, s.err }
func (s stubEngine) Catalog(context.Context) (museum.Catalog, error)         { return museum.Catalog{}, s.err }

func TestEngineErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"breaker open", fmt.Errorf("load: %w", database.ErrUnavailable), 503, models.ErrCodeUnavailable},
		{"timeout", fmt.Errorf("select: %w", context.DeadlineExceeded), 503, models.ErrCodeUnavailable},
		{"not found", spatial.ErrBuildingNotFound, 404, models.ErrCodeNotFound},
		{"invalid", fmt.Errorf("%w: bad", tour.ErrInvalidRequest), 400, models.ErrCodeValidation},
		{"profile", fmt.Errorf("%w: %w", tour.ErrInvalidRequest, &museum.ProfileError{Reason: museum.ProfileEmpty}), 400, models.ErrCodeProfile},
		{"other", errors.New("disk on fire"), 500, models.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := routerFor(NewHandler(stubEngine{err: tt.err}, nil, nil, "test"))
			rec, env := do(t, h, http.MethodGet, "/api/v1/buildings/b1/graph", "")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want %s", env.Error, tt.code)
			}
			if strings.Contains(rec.Body.String(), "disk on fire") {
				t.Error("internal error text leaked to the client")
			}
		})
	}
}
