package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-pro/config"
	"calendar-pro/internal/app"
	"calendar-pro/pkg/log"
)

func newTestServer(t *testing.T, ratePerMin int) *HTTPServer {
	t.Helper()
	cfg := &config.Config{
		Storage:  config.StorageConfig{Driver: config.StorageDriverMemory, Namespace: "calendar", CacheSize: 8},
		Calendar: config.CalendarConfig{Timezone: "UTC", UpcomingDays: 7, MaxVisibleEvents: 2, PendingTaskLimit: 5},
		Notify:   config.NotifyConfig{TTL: time.Minute, Capacity: 16},
	}
	a, err := app.New(context.Background(), log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("app: %v", err)
	}

	srv, err := New(log.NewNop(), Config{
		Logger:          log.NewNop(),
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "development",
		RateLimitPerMin: ratePerMin,
		CalendarUC:      a.Calendar,
		EventUC:         a.Event,
		TaskUC:          a.Task,
		PreferenceUC:    a.Preference,
		BackupUC:        a.Backup,
		Notifier:        a.Notifier,
	})
	if err != nil {
		t.Fatalf("server: %v", err)
	}
	return srv
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	h.ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, 0).Handler()
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := do(t, h, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s: missing request id header", path)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	h := newTestServer(t, 0).Handler()

	if w := do(t, h, http.MethodPost, "/api/v1/events", `{"title":"Standup","date":"2024-03-04","time":"09:30","category":"work"}`); w.Code != http.StatusCreated {
		t.Fatalf("create event: %d %s", w.Code, w.Body.String())
	}
	if w := do(t, h, http.MethodPost, "/api/v1/tasks", `{"title":"Pack","priority":"high"}`); w.Code != http.StatusCreated {
		t.Fatalf("create task: %d %s", w.Code, w.Body.String())
	}

	w := do(t, h, http.MethodGet, "/api/v1/calendar/month?year=2024&month=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("month: %d %s", w.Code, w.Body.String())
	}
	var month struct {
		Data struct {
			Cells []struct {
				Key    string `json:"key"`
				Events []struct {
					Title string `json:"title"`
				} `json:"events"`
			} `json:"cells"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &month); err != nil {
		t.Fatalf("decode month: %v", err)
	}
	if len(month.Data.Cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(month.Data.Cells))
	}
	found := false
	for _, c := range month.Data.Cells {
		if c.Key == "2024-03-04" && len(c.Events) == 1 && c.Events[0].Title == "Standup" {
			found = true
		}
	}
	if !found {
		t.Error("event missing from its grid cell")
	}

	w = do(t, h, http.MethodGet, "/api/v1/calendar/stats", "")
	if !strings.Contains(w.Body.String(), `"events":1`) || !strings.Contains(w.Body.String(), `"tasks":1`) {
		t.Errorf("unexpected stats %s", w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/api/v1/backup/export", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Disposition"), "calendar_backup_") {
		t.Fatalf("export: %d %v", w.Code, w.Header())
	}

	if w := do(t, h, http.MethodPost, "/api/v1/backup/import", `{"events": []}`); w.Code != http.StatusOK {
		t.Fatalf("import: %d %s", w.Code, w.Body.String())
	}
	w = do(t, h, http.MethodGet, "/api/v1/events", "")
	if !strings.Contains(w.Body.String(), `"total":0`) {
		t.Errorf("expected events cleared, got %s", w.Body.String())
	}
	w = do(t, h, http.MethodGet, "/api/v1/tasks", "")
	if !strings.Contains(w.Body.String(), `"Pack"`) {
		t.Errorf("expected tasks kept, got %s", w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/api/v1/notifications", "")
	for _, msg := range []string{"Event added successfully!", "Data imported successfully!"} {
		if !strings.Contains(w.Body.String(), msg) {
			t.Errorf("expected notification %q in %s", msg, w.Body.String())
		}
	}

	if w := do(t, h, http.MethodPost, "/api/v1/backup/publish", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without google calendar, got %d", w.Code)
	}
}

func TestRateLimitedAPI(t *testing.T) {
	h := newTestServer(t, 10).Handler() // burst of 1

	if w := do(t, h, http.MethodGet, "/api/v1/tasks", ""); w.Code != http.StatusOK {
		t.Fatalf("first request: %d", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/api/v1/tasks", ""); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Errorf("system routes are not limited, got %d", w.Code)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Error("expected error without use cases")
	}
}
