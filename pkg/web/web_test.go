package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/unilabs/labplatform/pkg/middleware/auth"
	"github.com/unilabs/labplatform/pkg/middleware/db"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type testServers struct {
	auth     *gin.Engine
	labs     *gin.Engine
	reservas *gin.Engine
}

func setup(t *testing.T) *testServers {
	t.Helper()
	gin.SetMode(gin.TestMode)

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := g.AutoMigrate(&model.Usuario{}, &model.Laboratorio{}, &model.Equipo{}, &model.Reserva{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.InitWithInstance(g)

	s := &testServers{
		auth:     gin.New(),
		labs:     gin.New(),
		reservas: gin.New(),
	}
	NewAuthRouter(s.auth)
	NewLabsRouter(s.labs)
	NewReservasRouter(s.reservas)
	return s
}

func do(t *testing.T, engine *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	env := &envelope{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), env); err != nil {
			t.Fatalf("decode %s %s reply %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec, env
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.Issuer().Issue(1, string(model.Administrador))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestHealthEndpoints(t *testing.T) {
	s := setup(t)
	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		rec, _ := do(t, s.labs, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestLaboratorioEndToEnd(t *testing.T) {
	s := setup(t)
	token := adminToken(t)

	rec, env := do(t, s.labs, http.MethodPost, "/laboratorios", token, map[string]string{
		"Nombre":      "Química",
		"Descripcion": "Laboratorio de química general",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d (%s), want 201", rec.Code, rec.Body.String())
	}
	var lab struct {
		ID     int64  `json:"IdLaboratorio"`
		Nombre string `json:"Nombre"`
	}
	if err := json.Unmarshal(env.Data, &lab); err != nil {
		t.Fatalf("decode lab: %v", err)
	}
	if lab.ID != 1 || lab.Nombre != "Química" {
		t.Fatalf("lab = %+v", lab)
	}

	rec, _ = do(t, s.labs, http.MethodGet, "/laboratorios/1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get = %d, want 200", rec.Code)
	}

	rec, env = do(t, s.labs, http.MethodDelete, "/laboratorios/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d, want 200", rec.Code)
	}
	if env.Message != "Laboratorio eliminado correctamente" {
		t.Fatalf("delete message = %q", env.Message)
	}

	rec, env = do(t, s.labs, http.MethodGet, "/laboratorios/1", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", rec.Code)
	}
	if env.Error != "Laboratorio no encontrado" {
		t.Fatalf("error = %q", env.Error)
	}

	rec, _ = do(t, s.labs, http.MethodGet, "/laboratorios/abc", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id = %d, want 400", rec.Code)
	}
}

func TestUsersAndLoginFlow(t *testing.T) {
	s := setup(t)
	token := adminToken(t)

	rec, _ := do(t, s.auth, http.MethodPost, "/users", token, map[string]string{
		"Nombre":     "Ana Torres",
		"Correo":     "ana@example.com",
		"Tipo":       "PROFESOR",
		"Contraseña": "secreto123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create user = %d (%s), want 201", rec.Code, rec.Body.String())
	}

	rec, env := do(t, s.auth, http.MethodPost, "/login", "", map[string]string{
		"Correo":     "ana@example.com",
		"Contraseña": "secreto123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("login = %d (%s), want 201", rec.Code, rec.Body.String())
	}
	var loginResp struct {
		Token   string `json:"token"`
		Usuario struct {
			Correo string `json:"Correo"`
			Tipo   string `json:"Tipo"`
		} `json:"usuario"`
	}
	if err := json.Unmarshal(env.Data, &loginResp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if loginResp.Token == "" || loginResp.Usuario.Tipo != "PROFESOR" {
		t.Fatalf("login resp = %+v", loginResp)
	}

	rec, env = do(t, s.auth, http.MethodPost, "/login", "", map[string]string{
		"Correo":     "ana@example.com",
		"Contraseña": "incorrecta",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login = %d, want 401", rec.Code)
	}
	if env.Error != "Correo o contraseña incorrectos" {
		t.Fatalf("bad login error = %q", env.Error)
	}

	rec, _ = do(t, s.auth, http.MethodGet, "/users", token, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("list users = %d, want 201", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "Contraseña") || strings.Contains(rec.Body.String(), "secreto123") {
		t.Fatalf("password leaked in list reply: %s", rec.Body.String())
	}
}

func TestAuthGate(t *testing.T) {
	s := setup(t)

	rec, env := do(t, s.auth, http.MethodGet, "/users", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token = %d, want 401", rec.Code)
	}
	if env.Error != "No has iniciado sesión" {
		t.Fatalf("no token error = %q", env.Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec2 := httptest.NewRecorder()
	s.auth.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusUnauthorized {
		t.Fatalf("bad scheme = %d, want 401", rec2.Code)
	}

	rec, env = do(t, s.auth, http.MethodGet, "/users", "no.es.jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token = %d, want 401", rec.Code)
	}
	if env.Error != "Token inválido" {
		t.Fatalf("garbage token error = %q", env.Error)
	}

	estudiante, err := auth.Issuer().Issue(7, string(model.Estudiante))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec, _ = do(t, s.auth, http.MethodGet, "/users", estudiante, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("estudiante on /users = %d, want 403", rec.Code)
	}

	rec, _ = do(t, s.labs, http.MethodPost, "/laboratorios", "", map[string]string{
		"Nombre":      "Física",
		"Descripcion": "x",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create lab = %d, want 401", rec.Code)
	}

	// Reads stay public.
	rec, _ = do(t, s.labs, http.MethodGet, "/laboratorios", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("public list = %d, want 200", rec.Code)
	}
}

func TestReservaEndToEnd(t *testing.T) {
	s := setup(t)
	token := adminToken(t)

	inicio := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	fin := inicio.Add(2 * time.Hour)

	rec, env := do(t, s.reservas, http.MethodPost, "/reservas", token, map[string]any{
		"FechaInicio": inicio,
		"FechaFin":    fin,
		"IdUsuario":   1,
		"IdUbicacion": 1,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d (%s), want 201", rec.Code, rec.Body.String())
	}
	var reserva struct {
		ID     int64  `json:"Id"`
		Status string `json:"Status"`
	}
	if err := json.Unmarshal(env.Data, &reserva); err != nil {
		t.Fatalf("decode reserva: %v", err)
	}
	if reserva.Status != "pending" {
		t.Fatalf("status = %q, want pending", reserva.Status)
	}

	rec, _ = do(t, s.reservas, http.MethodPatch, "/reservas/1", token, map[string]string{
		"Status": "confirmed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm = %d (%s), want 200", rec.Code, rec.Body.String())
	}

	rec, env = do(t, s.reservas, http.MethodPost, "/reservas", token, map[string]any{
		"FechaInicio": inicio.Add(time.Hour),
		"FechaFin":    fin.Add(time.Hour),
		"IdUsuario":   2,
		"IdUbicacion": 1,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("overlap = %d, want 409", rec.Code)
	}
	if env.Error != "Ya existe una reserva para ese laboratorio y rango de fechas." {
		t.Fatalf("overlap error = %q", env.Error)
	}

	rec, env = do(t, s.reservas, http.MethodDelete, "/reservas/1", token, nil)
	if rec.Code != http.StatusOK || env.Message != "Reserva eliminada correctamente" {
		t.Fatalf("delete = %d %q", rec.Code, env.Message)
	}
}
