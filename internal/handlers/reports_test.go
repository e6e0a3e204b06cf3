package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shoe-tracker/internal/models"
)

type creationRowResp struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func (a *testApp) creationData(query string) []creationRowResp {
	a.t.Helper()
	w := a.request(http.MethodGet, "/api/shoe_creation_data"+query, nil)
	if w.Code != http.StatusOK {
		a.t.Fatalf("creation data %q: status %d, body %s", query, w.Code, w.Body.String())
	}
	var rows []creationRowResp
	decodeBody(a.t, w, &rows)
	return rows
}

// seedShoe пишет запись в журнал напрямую, с нужной датой.
func (a *testApp) seedShoe(modelID, operatorID uint, serial string, createdAt time.Time) {
	a.t.Helper()
	shoe := models.Shoe{
		ShoeModelID:  modelID,
		SerialNumber: serial,
		BatchNumber:  "B1",
		CreatedAt:    createdAt,
		CreatedBy:    operatorID,
	}
	if err := a.db.Shoes.Create(&shoe).Error; err != nil {
		a.t.Fatalf("seed shoe: %v", err)
	}
}

func seedLedger(a *testApp) (airxID, trailID uint) {
	a.login("admin", "shoepass")
	a.createAccount("bob", "secret123", "prodeng")
	airxID = a.addModel("AirX")
	trailID = a.addModel("TrailPro")

	var admin, bob models.User
	for _, u := range a.listUsers() {
		switch u.Username {
		case "admin":
			admin = u
		case "bob":
			bob = u
		}
	}

	day1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 11, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	a.seedShoe(airxID, admin.ID, "SN1", day1)
	a.seedShoe(airxID, bob.ID, "SN2", day1)
	a.seedShoe(trailID, bob.ID, "SN3", day2)
	a.seedShoe(airxID, bob.ID, "SN4", day3)
	a.seedShoe(trailID, admin.ID, "SN5", day3)
	return airxID, trailID
}

func TestCreationDataUnfiltered(t *testing.T) {
	a := newTestApp(t)
	seedLedger(a)

	rows := a.creationData("")
	if len(rows) != 3 {
		t.Fatalf("distinct dates = %d, want 3: %+v", len(rows), rows)
	}

	total := 0
	for i, r := range rows {
		total += r.Count
		if i > 0 && rows[i-1].Date >= r.Date {
			t.Errorf("dates not ascending: %+v", rows)
		}
	}
	if total != 5 {
		t.Fatalf("counts sum to %d, want ledger size 5", total)
	}
	if rows[0].Date != "2024-03-01" || rows[0].Count != 2 {
		t.Errorf("first row = %+v, want 2024-03-01 count 2", rows[0])
	}
}

// Фильтр не может увеличить ни один счётчик.
func TestCreationDataFilterNeverIncreases(t *testing.T) {
	a := newTestApp(t)
	airxID, _ := seedLedger(a)

	unfiltered := map[string]int{}
	for _, r := range a.creationData("") {
		unfiltered[r.Date] = r.Count
	}

	for _, r := range a.creationData(fmt.Sprintf("?model_id=%d", airxID)) {
		if r.Count > unfiltered[r.Date] {
			t.Errorf("model filter raised count on %s: %d > %d", r.Date, r.Count, unfiltered[r.Date])
		}
	}
}

func TestCreationDataConjunctiveFilters(t *testing.T) {
	a := newTestApp(t)
	airxID, _ := seedLedger(a)

	var bobID uint
	for _, u := range a.listUsers() {
		if u.Username == "bob" {
			bobID = u.ID
		}
	}

	// AirX + bob: SN2 (день 1) и SN4 (день 3)
	rows := a.creationData(fmt.Sprintf("?model_id=%d&operator=%d", airxID, bobID))
	if len(rows) != 2 || rows[0].Count != 1 || rows[1].Count != 1 {
		t.Fatalf("model+operator filter: %+v", rows)
	}

	// диапазон дат, обе границы включительно
	rows = a.creationData("?start_date=2024-03-02&end_date=2024-03-04")
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	if total != 3 {
		t.Fatalf("date range total = %d, want 3: %+v", total, rows)
	}

	// сентинел "all" эквивалентен отсутствию фильтра
	if got := a.creationData("?model_id=all&operator=all"); len(got) != 3 {
		t.Fatalf("all sentinel: %+v", got)
	}
}

func TestCreationDataBadDate(t *testing.T) {
	a := newTestApp(t)
	a.login("admin", "shoepass")

	w := a.request(http.MethodGet, "/api/shoe_creation_data?start_date=03-01-2024", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date: status = %d, want 400", w.Code)
	}
}

func TestModelsAndOperators(t *testing.T) {
	a := newTestApp(t)
	seedLedger(a)

	w := a.request(http.MethodGet, "/api/shoe_models_and_operators", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Models []struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"models"`
		Operators []struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"operators"`
	}
	decodeBody(t, w, &resp)

	if len(resp.Models) != 2 {
		t.Fatalf("models = %+v, want 2", resp.Models)
	}
	names := map[string]bool{}
	for _, op := range resp.Operators {
		names[op.Username] = true
	}
	if len(resp.Operators) != 2 || !names["admin"] || !names["bob"] {
		t.Fatalf("operators = %+v, want admin and bob", resp.Operators)
	}
}

// Отчёты закрыты для роли other.
func TestReportsForbiddenForOther(t *testing.T) {
	a := newTestApp(t)
	a.login("admin", "shoepass")
	a.createAccount("viewer", "secret123", "other")
	a.clearSession()
	a.login("viewer", "secret123")

	if w := a.request(http.MethodGet, "/api/shoe_creation_data", nil); w.Code != http.StatusForbidden {
		t.Fatalf("creation data as other: status = %d, want 403", w.Code)
	}
	if w := a.request(http.MethodGet, "/api/shoe_models_and_operators", nil); w.Code != http.StatusForbidden {
		t.Fatalf("filter options as other: status = %d, want 403", w.Code)
	}
}
