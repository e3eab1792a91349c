package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// fakeStore satisfies handler.Store[T] for any entity and counts store calls,
// so tests can assert that gated requests never produce side effects.
type fakeStore[T any] struct {
	calls int
}

func (s *fakeStore[T]) List(ctx context.Context) ([]T, error) {
	s.calls++
	return []T{}, nil
}

func (s *fakeStore[T]) Get(ctx context.Context, id string) (T, error) {
	s.calls++
	var zero T
	return zero, repository.ErrNotFound
}

func (s *fakeStore[T]) Create(ctx context.Context, in T) (T, error) {
	s.calls++
	return in, nil
}

func (s *fakeStore[T]) Update(ctx context.Context, id string, in T) (T, error) {
	s.calls++
	var zero T
	return zero, repository.ErrNotFound
}

func (s *fakeStore[T]) Delete(ctx context.Context, id string) error {
	s.calls++
	return repository.ErrNotFound
}

type staticValidator struct{}

func (staticValidator) Validate(ctx context.Context, tokenHash string) (string, error) {
	return "u1", nil
}

const secret = "router-test-secret"

type fixture struct {
	e            *echo.Echo
	rooms        *fakeStore[repository.Room]
	locations    *fakeStore[repository.Location]
	reservations *fakeStore[repository.Reservation]
	users        *fakeStore[repository.User]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		e:            echo.New(),
		rooms:        &fakeStore[repository.Room]{},
		locations:    &fakeStore[repository.Location]{},
		reservations: &fakeStore[repository.Reservation]{},
		users:        &fakeStore[repository.User]{},
	}
	auth := middleware.Auth(secret, staticValidator{})
	// nil Redis client -> cache middleware is a no-op
	cache := middleware.Cache(config.CacheConfig{}, nil)
	RegisterRoutes(f.e,
		handler.NewRoomResource(f.rooms),
		handler.NewLocationResource(f.locations),
		handler.NewReservationResource(f.reservations, nil),
		handler.NewUserResource(f.users),
		auth, cache)
	return f
}

func (f *fixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func mintToken(t *testing.T) string {
	t.Helper()
	tok, err := utils.NewAPIToken(secret, "u1", 1)
	if err != nil {
		t.Fatal(err)
	}
	return tok.Raw
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	f := newFixture(t)
	for _, target := range []string{"/rooms", "/locations", "/healthz"} {
		if rec := f.do(http.MethodGet, target, "", ""); rec.Code != http.StatusOK {
			t.Errorf("GET %s without token: status = %d, want 200", target, rec.Code)
		}
	}
}

func TestWritesAreGatedWithoutSideEffects(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		method, target, body string
	}{
		{http.MethodPost, "/rooms", `{"number":"101","type":"single","price":80,"location_id":"L1"}`},
		{http.MethodPut, "/rooms/r1", `{"number":"101","type":"single","price":80,"location_id":"L1"}`},
		{http.MethodDelete, "/rooms/r1", ""},
		{http.MethodPost, "/locations", `{"name":"Hotel Central","address":"Main St 1"}`},
		{http.MethodDelete, "/locations/l1", ""},
		{http.MethodPost, "/users", `{"email":"a@b.c","name":"A"}`},
	}
	for _, tc := range cases {
		if rec := f.do(tc.method, tc.target, tc.body, ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want 401", tc.method, tc.target, rec.Code)
		}
	}
	if n := f.rooms.calls + f.locations.calls + f.users.calls; n != 0 {
		t.Errorf("store reached %d times by unauthenticated writes", n)
	}
}

func TestReservationsAreGatedOnEveryMethod(t *testing.T) {
	f := newFixture(t)
	if rec := f.do(http.MethodGet, "/reservations", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("GET /reservations without token: status = %d, want 401", rec.Code)
	}
	if rec := f.do(http.MethodGet, "/reservations/r1", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("GET /reservations/r1 without token: status = %d, want 401", rec.Code)
	}
	if f.reservations.calls != 0 {
		t.Error("store reached by unauthenticated reservation reads")
	}

	tok := mintToken(t)
	if rec := f.do(http.MethodGet, "/reservations", "", tok); rec.Code != http.StatusOK {
		t.Errorf("GET /reservations with token: status = %d, want 200", rec.Code)
	}
}

func TestAuthenticatedWriteReachesStore(t *testing.T) {
	f := newFixture(t)
	tok := mintToken(t)

	rec := f.do(http.MethodPost, "/rooms", `{"number":"101","type":"single","price":80,"location_id":"L1"}`, tok)
	if rec.Code != http.StatusCreated {
		t.Fatalf("authenticated POST /rooms: status = %d, want 201", rec.Code)
	}
	if f.rooms.calls != 1 {
		t.Errorf("store calls = %d, want 1", f.rooms.calls)
	}

	if rec := f.do(http.MethodDelete, "/rooms/missing", "", tok); rec.Code != http.StatusNotFound {
		t.Errorf("authenticated DELETE of unknown id: status = %d, want 404", rec.Code)
	}
}
