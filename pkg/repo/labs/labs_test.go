package labs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetEquipo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/equipos/5" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Equipo no encontrado"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"IdEquipo":5,"Nombre":"Microscopio","Modelo":"M-1","Estado":"Operativo","IdLaboratorio":2}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	info, err := c.GetEquipo(context.Background(), 5)
	if err != nil {
		t.Fatalf("get equipo err: %v", err)
	}
	if info.ID != 5 || info.Nombre != "Microscopio" || info.IdLaboratorio != 2 {
		t.Fatalf("info = %+v", info)
	}

	if _, err := c.GetEquipo(context.Background(), 99); err == nil {
		t.Fatal("missing equipo did not error")
	}
}

func TestGetEquipoServiceDown(t *testing.T) {
	c := New("http://127.0.0.1:1")
	if _, err := c.GetEquipo(context.Background(), 1); err == nil {
		t.Fatal("unreachable service did not error")
	}
}
