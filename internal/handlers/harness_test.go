package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"shoe-tracker/internal/config"
	"shoe-tracker/internal/database"
	"shoe-tracker/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// testApp поднимает полный роутер на трёх временных sqlite-файлах.
type testApp struct {
	t       *testing.T
	cfg     *config.Config
	db      *database.Stores
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newTestApp(t *testing.T, opts ...func(*config.Config)) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{
		UsersDBPath:    filepath.Join(dir, "users.db"),
		ModelsDBPath:   filepath.Join(dir, "models.db"),
		ShoeDBPath:     filepath.Join(dir, "shoes.db"),
		ServerPort:     "0",
		SessionSecret:  "test-secret",
		AdminUsername:  "admin",
		AdminPassword:  "shoepass",
		LogLevel:       "error",
		LoginRateRPS:   1000,
		LoginRateBurst: 1000,
	}
	for _, o := range opts {
		o(cfg)
	}

	db, err := database.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open stores: %v", err)
	}

	return &testApp{
		t:       t,
		cfg:     cfg,
		db:      db,
		router:  server.NewRouter(cfg, db, zap.NewNop()),
		cookies: make(map[string]*http.Cookie),
	}
}

func (a *testApp) request(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range a.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		a.cookies[ck.Name] = ck
	}
	return w
}

func (a *testApp) login(username, password string) {
	a.t.Helper()
	w := a.request(http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	})
	if w.Code != http.StatusOK {
		a.t.Fatalf("login %s: status %d, body %s", username, w.Code, w.Body.String())
	}
}

// clearSession сбрасывает cookie, имитируя другой браузер.
func (a *testApp) clearSession() {
	a.cookies = make(map[string]*http.Cookie)
}

func (a *testApp) createAccount(username, password, role string) {
	a.t.Helper()
	w := a.request(http.MethodPost, "/api/create_account", map[string]string{
		"username": username,
		"password": password,
		"role":     role,
	})
	if w.Code != http.StatusOK {
		a.t.Fatalf("create account %s: status %d, body %s", username, w.Code, w.Body.String())
	}
}

func (a *testApp) addModel(name string) uint {
	a.t.Helper()
	w := a.request(http.MethodPost, "/api/add_shoe_model", map[string]any{
		"model_name":   name,
		"brand":        "TestBrand",
		"category":     "running",
		"gender":       "unisex",
		"material":     "mesh",
		"sole_type":    "rubber",
		"closure_type": "laces",
		"color":        "white",
		"weight_grams": 300,
		"price":        99.9,
		"release_date": "2024-01-01",
	})
	if w.Code != http.StatusOK {
		a.t.Fatalf("add model %s: status %d, body %s", name, w.Code, w.Body.String())
	}
	var resp struct {
		ID uint `json:"id"`
	}
	decodeBody(a.t, w, &resp)
	return resp.ID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
