package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-pro/internal/calendar"
	"calendar-pro/internal/model"
	"calendar-pro/pkg/log"
)

type mockUseCase struct {
	monthIn    calendar.MonthInput
	navigateIn calendar.NavigateInput
}

func (m *mockUseCase) Month(ctx context.Context, input calendar.MonthInput) (calendar.MonthOutput, error) {
	m.monthIn = input
	cells := make([]calendar.DayCell, calendar.GridSize)
	cells[0] = calendar.DayCell{
		Cell:      calendar.Cell{Key: "2024-02-25", Day: 25, Position: calendar.PositionPrev},
		Events:    []model.Event{{ID: "1", Title: "x", Category: model.CategoryWork}},
		Overflow:  2,
		HasEvents: true,
	}
	return calendar.MonthOutput{Year: 2024, Month: time.March, Title: "March 2024", Cells: cells}, nil
}

func (m *mockUseCase) Navigate(ctx context.Context, input calendar.NavigateInput) (calendar.NavigateOutput, error) {
	m.navigateIn = input
	if input.Action == calendar.ActionSelect && input.Date == "" {
		return calendar.NavigateOutput{}, calendar.ErrInvalidDate
	}
	return calendar.NavigateOutput{View: model.View{Year: 2024, Month: time.April}, Title: "April 2024"}, nil
}

func (m *mockUseCase) Stats(ctx context.Context) (calendar.StatsOutput, error) {
	return calendar.StatsOutput{Events: 3, Tasks: 2, Completed: 1, CompletionRate: 50}, nil
}

func serve(uc calendar.UseCase, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestMonth(t *testing.T) {
	uc := &mockUseCase{}
	w := serve(uc, http.MethodGet, "/api/v1/calendar/month?year=2024&month=3&q=gym", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.monthIn.Year != 2024 || uc.monthIn.Month != time.March || uc.monthIn.Query != "gym" {
		t.Errorf("input not forwarded: %+v", uc.monthIn)
	}

	var body struct {
		Data monthResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Cells) != 42 || len(body.Data.Weekdays) != 7 {
		t.Fatalf("unexpected shape: %d cells", len(body.Data.Cells))
	}
	first := body.Data.Cells[0]
	if first.Position != "prev" || first.Overflow != 2 || first.Events[0].Category != "work" {
		t.Errorf("unexpected first cell %+v", first)
	}

	if w := serve(uc, http.MethodGet, "/api/v1/calendar/month?month=13", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for month 13, got %d", w.Code)
	}
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "next", body: `{"action":"next"}`, wantStatus: http.StatusOK},
		{name: "unknown action", body: `{"action":"jump"}`, wantStatus: http.StatusBadRequest},
		{name: "select without date", body: `{"action":"select"}`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&mockUseCase{}, http.MethodPost, "/api/v1/calendar/navigate", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestStats(t *testing.T) {
	w := serve(&mockUseCase{}, http.MethodGet, "/api/v1/calendar/stats", "")
	if !strings.Contains(w.Body.String(), `"completion_rate":50`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
