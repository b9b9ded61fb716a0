package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/gateway/db"
	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/usecase/auth"
	"pesisir-api/internal/domain/usecase/forum"
	"pesisir-api/internal/domain/usecase/weather"
	"pesisir-api/pkg/msg"
)

func TestMain(m *testing.M) {
	msg.Init("../../../configs/messages.yml")
	os.Exit(m.Run())
}

type stubWeatherUseCase struct {
	snapshot *model.NormalizedWeather
	err      error
	refreshs []string
}

func (s *stubWeatherUseCase) FetchWeather(location entity.LocationKey) (*model.NormalizedWeather, error) {
	if !entity.KnownLocation(location) {
		return nil, weather.ErrUnknownLocation
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func (s *stubWeatherUseCase) PreloadAll() *model.PreloadReport { return &model.PreloadReport{} }

func (s *stubWeatherUseCase) RefreshAllScheduled(requestID string) {
	s.refreshs = append(s.refreshs, requestID)
}

func (s *stubWeatherUseCase) RefreshLocation(location entity.LocationKey) error { return nil }

type stubDashboardUseCase struct {
	view *model.DashboardView
}

func (s *stubDashboardUseCase) Render(location entity.LocationKey) (*model.DashboardView, error) {
	if !entity.KnownLocation(location) {
		return nil, weather.ErrUnknownLocation
	}
	return s.view, nil
}

func (s *stubDashboardUseCase) Locations() []entity.Beach { return entity.AllBeaches() }

func newTestServer(t *testing.T, register func(api *echo.Group)) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	register(e.Group("/api"))
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestDashboardControllerRender(t *testing.T) {
	view := &model.DashboardView{
		Location: entity.Anyer,
		Name:     "Pantai Anyer",
		Status:   model.DataStatusOnline,
	}
	e := newTestServer(t, func(api *echo.Group) {
		NewDashboardController(api, &stubDashboardUseCase{view: view}).InitDashboardRoutes()
	})

	rec := doRequest(e, http.MethodGet, "/api/dashboard/anyer", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeMap(t, rec)
	if body["name"] != "Pantai Anyer" {
		t.Errorf("name = %v, want Pantai Anyer", body["name"])
	}

	rec = doRequest(e, http.MethodGet, "/api/dashboard/kuta", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := decodeMap(t, rec)["error"]; got != "Lokasi pantai tidak dikenal: kuta" {
		t.Errorf("error = %v", got)
	}
}

func TestDashboardControllerLocations(t *testing.T) {
	e := newTestServer(t, func(api *echo.Group) {
		NewDashboardController(api, &stubDashboardUseCase{}).InitDashboardRoutes()
	})

	rec := doRequest(e, http.MethodGet, "/api/locations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var beaches []entity.Beach
	if err := json.Unmarshal(rec.Body.Bytes(), &beaches); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(beaches) != 6 {
		t.Fatalf("len(beaches) = %d, want 6", len(beaches))
	}
	if beaches[0].Key != entity.Anyer {
		t.Errorf("first beach = %s, want anyer", beaches[0].Key)
	}
}

func TestWeatherControllerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{
			name:       "unknown location",
			target:     "/api/weather/bali",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "transport failure",
			target:     "/api/weather/carita",
			err:        &model.UpstreamError{Kind: model.FailureTransport, RegionCode: "36.01.28.2003"},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unusable payload",
			target:     "/api/weather/carita",
			err:        &model.UpstreamError{Kind: model.FailureUpstreamData, RegionCode: "36.01.28.2003"},
			wantStatus: http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(t, func(api *echo.Group) {
				NewWeatherController(api, &stubWeatherUseCase{err: tt.err}).InitWeatherRoutes()
			})
			rec := doRequest(e, http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if _, ok := decodeMap(t, rec)["error"]; !ok {
				t.Error("response carries no error field")
			}
		})
	}
}

func TestWeatherControllerSnapshot(t *testing.T) {
	stub := &stubWeatherUseCase{snapshot: &model.NormalizedWeather{
		WeatherCondition: "Cerah",
		Temperature:      "29°C",
		Humidity:         "75%",
		WindSpeed:        "12 km/h",
		WindDirection:    "Barat",
		LastUpdate:       time.Now().Format(time.RFC3339),
	}}
	e := newTestServer(t, func(api *echo.Group) {
		NewWeatherController(api, stub).InitWeatherRoutes()
	})

	rec := doRequest(e, http.MethodGet, "/api/weather/anyer", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeMap(t, rec)
	if body["temperature"] != "29°C" {
		t.Errorf("temperature = %v, want 29°C", body["temperature"])
	}
	if body["windDirection"] != "Barat" {
		t.Errorf("windDirection = %v, want Barat", body["windDirection"])
	}
}

func TestWeatherControllerSchedule(t *testing.T) {
	stub := &stubWeatherUseCase{}
	e := newTestServer(t, func(api *echo.Group) {
		NewWeatherController(api, stub).InitWeatherRoutes()
	})

	rec := doRequest(e, http.MethodGet, "/api/weather/schedule", "")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	if decodeMap(t, rec)["requestId"] == "" {
		t.Error("requestId is empty")
	}
}

func TestForumControllerFlow(t *testing.T) {
	e := newTestServer(t, func(api *echo.Group) {
		NewForumController(api, forum.NewForumUseCase()).InitForumRoutes()
	})

	rec := doRequest(e, http.MethodGet, "/api/forum/threads?page=0&size=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/forum/threads", `{"title":"Arus balik di Carita","author":"Budi","content":"Ada info arus balik hari ini?","tags":"keselamatan"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}
	created := decodeMap(t, rec)
	threadID, _ := created["id"].(string)
	if threadID == "" {
		t.Fatal("created thread has no id")
	}

	rec = doRequest(e, http.MethodPost, "/api/forum/threads", `{"title":"","author":"Budi","content":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing fields status = %d, want 400", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/forum/threads/"+threadID+"/replies", `{"author":"Sari","content":"Pagi tadi aman."}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("reply status = %d, want 201", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/forum/threads/tidak-ada/replies", `{"author":"Sari","content":"Halo"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("reply to missing thread status = %d, want 404", rec.Code)
	}

	rec = doRequest(e, http.MethodGet, "/api/forum/threads/"+threadID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	thread := decodeMap(t, rec)
	replies, _ := thread["replies"].([]interface{})
	if len(replies) != 1 {
		t.Errorf("len(replies) = %d, want 1", len(replies))
	}
}

type stubUserGateway struct {
	users  map[uint]*entity.User
	nextID uint
}

func newStubUserGateway() *stubUserGateway {
	return &stubUserGateway{users: map[uint]*entity.User{}, nextID: 1}
}

func (g *stubUserGateway) Create(user *entity.User) error {
	for _, existing := range g.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return db.ErrDuplicate
		}
	}
	user.ID = g.nextID
	g.nextID++
	copied := *user
	g.users[user.ID] = &copied
	return nil
}

func (g *stubUserGateway) FindByUsernameOrEmail(login string) (*entity.User, error) {
	for _, user := range g.users {
		if user.Username == login || user.Email == login {
			copied := *user
			return &copied, nil
		}
	}
	return nil, db.ErrNotFound
}

func (g *stubUserGateway) FindByID(id uint) (*entity.User, error) {
	user, ok := g.users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (g *stubUserGateway) Update(user *entity.User) error {
	if _, ok := g.users[user.ID]; !ok {
		return db.ErrNotFound
	}
	copied := *user
	g.users[user.ID] = &copied
	return nil
}

func (g *stubUserGateway) UpdatePassword(id uint, hash string) error {
	user, ok := g.users[id]
	if !ok {
		return db.ErrNotFound
	}
	user.Password = hash
	return nil
}

func TestAuthControllerFlow(t *testing.T) {
	authUseCase := auth.NewAuthUseCase(newStubUserGateway(), "controller-test-secret", time.Hour)
	e := newTestServer(t, func(api *echo.Group) {
		NewAuthController(api, authUseCase).InitAuthRoutes()
	})

	rec := doRequest(e, http.MethodPost, "/api/register", `{"username":"andi","email":"andi@mail.com","password":"123"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short password status = %d, want 400", rec.Code)
	}
	if got := decodeMap(t, rec)["error"]; got != "Password harus minimal 6 karakter" {
		t.Errorf("error = %v", got)
	}

	rec = doRequest(e, http.MethodPost, "/api/register", `{"username":"andi","email":"andi@mail.com","password":"rahasia123","full_name":"Andi Saputra"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(e, http.MethodPost, "/api/register", `{"username":"andi","email":"lain@mail.com","password":"rahasia123"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate status = %d, want 400", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/login", `{"username":"andi","password":"salah"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/login", `{"username":"andi@mail.com","password":"rahasia123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	token, _ := decodeMap(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}

	rec = doRequest(e, http.MethodGet, "/api/profile", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated profile status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("profile status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	profile := decodeMap(t, recorder)
	user, _ := profile["user"].(map[string]interface{})
	if user["username"] != "andi" {
		t.Errorf("profile username = %v, want andi", user["username"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password hash leaked in profile payload")
	}
}
