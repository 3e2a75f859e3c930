package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/unilabs/labplatform/pkg/common/code"
	core "github.com/unilabs/labplatform/pkg/core/inventory"
	"github.com/unilabs/labplatform/pkg/middleware/db"
	invStore "github.com/unilabs/labplatform/pkg/repo/inventory"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

func newTestService(t *testing.T) core.Service {
	t.Helper()
	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := g.AutoMigrate(&model.Laboratorio{}, &model.Equipo{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.InitWithInstance(g)
	return NewWithStore(invStore.New())
}

func isCode(err error, want *code.Error) bool {
	var ce *code.Error
	return errors.As(err, &ce) && errors.Is(ce, want)
}

func mustLab(t *testing.T, svc core.Service, nombre string) *core.LaboratorioResp {
	t.Helper()
	lab, err := svc.CreateLaboratorio(context.Background(), &core.CreateLaboratorioReq{
		Nombre:      nombre,
		Descripcion: "laboratorio de " + nombre,
	})
	if err != nil {
		t.Fatalf("create lab %s err: %v", nombre, err)
	}
	return lab
}

func TestLaboratorioLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	lab := mustLab(t, svc, "Química")
	if lab.ID == 0 {
		t.Fatal("created lab has no id")
	}

	got, err := svc.GetLaboratorio(ctx, lab.ID)
	if err != nil {
		t.Fatalf("get err: %v", err)
	}
	if got.Nombre != "Química" || got.Descripcion != "laboratorio de Química" {
		t.Fatalf("got = %+v", got)
	}

	nuevo := "Química Orgánica"
	updated, err := svc.UpdateLaboratorio(ctx, lab.ID, &core.UpdateLaboratorioReq{Nombre: &nuevo})
	if err != nil {
		t.Fatalf("update err: %v", err)
	}
	if updated.Nombre != nuevo {
		t.Fatalf("nombre = %q after update", updated.Nombre)
	}
	if updated.Descripcion != got.Descripcion {
		t.Fatal("partial update touched Descripcion")
	}

	if err := svc.DeleteLaboratorio(ctx, lab.ID); err != nil {
		t.Fatalf("delete err: %v", err)
	}
	if _, err := svc.GetLaboratorio(ctx, lab.ID); !isCode(err, code.NotFound) {
		t.Fatalf("get after delete err = %v, want NotFound", err)
	}
	if err := svc.DeleteLaboratorio(ctx, lab.ID); !isCode(err, code.NotFound) {
		t.Fatalf("second delete err = %v, want NotFound", err)
	}
}

func TestCreateLaboratorioValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateLaboratorio(ctx, &core.CreateLaboratorioReq{Nombre: "Sin descripción"})
	if !isCode(err, code.ParamErr) {
		t.Fatalf("err = %v, want ParamErr", err)
	}

	mustLab(t, svc, "Física")
	_, err = svc.CreateLaboratorio(ctx, &core.CreateLaboratorioReq{Nombre: "Física", Descripcion: "otro"})
	if !isCode(err, code.Conflict) {
		t.Fatalf("duplicate nombre err = %v, want Conflict", err)
	}
}

func TestDeleteLaboratorioWithEquiposConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	lab := mustLab(t, svc, "Robótica")
	if _, err := svc.CreateEquipo(ctx, &core.CreateEquipoReq{
		Nombre:        "Brazo robótico",
		Modelo:        "RX-7",
		Estado:        "Operativo",
		IdLaboratorio: lab.ID,
	}); err != nil {
		t.Fatalf("create equipo err: %v", err)
	}

	if err := svc.DeleteLaboratorio(ctx, lab.ID); !isCode(err, code.Conflict) {
		t.Fatalf("delete err = %v, want Conflict", err)
	}
	if _, err := svc.GetLaboratorio(ctx, lab.ID); err != nil {
		t.Fatalf("lab gone after refused delete: %v", err)
	}
}

func TestCreateEquipoValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	lab := mustLab(t, svc, "Electrónica")

	_, err := svc.CreateEquipo(ctx, &core.CreateEquipoReq{
		Nombre:        "Osciloscopio",
		Modelo:        "OS-100",
		Estado:        "Roto",
		IdLaboratorio: lab.ID,
	})
	if !isCode(err, code.ParamErr) {
		t.Fatalf("bad estado err = %v, want ParamErr", err)
	}

	_, err = svc.CreateEquipo(ctx, &core.CreateEquipoReq{
		Nombre:        "Osciloscopio",
		Modelo:        "OS-100",
		Estado:        "Operativo",
		IdLaboratorio: 9999,
	})
	if !isCode(err, code.ParamErr) {
		t.Fatalf("unknown lab err = %v, want ParamErr", err)
	}
}

func TestUpdateEquipo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	lab := mustLab(t, svc, "Metrología")

	eq, err := svc.CreateEquipo(ctx, &core.CreateEquipoReq{
		Nombre:        "Balanza",
		Modelo:        "B-1",
		Estado:        "Operativo",
		IdLaboratorio: lab.ID,
	})
	if err != nil {
		t.Fatalf("create equipo err: %v", err)
	}

	estado := "Mantenimiento"
	updated, err := svc.UpdateEquipo(ctx, eq.ID, &core.UpdateEquipoReq{Estado: &estado})
	if err != nil {
		t.Fatalf("update err: %v", err)
	}
	if updated.Estado != model.Mantenimiento {
		t.Fatalf("estado = %q after update", updated.Estado)
	}
	if updated.Nombre != "Balanza" || updated.Modelo != "B-1" {
		t.Fatal("partial update touched other fields")
	}

	malo := "Perdido"
	if _, err := svc.UpdateEquipo(ctx, eq.ID, &core.UpdateEquipoReq{Estado: &malo}); !isCode(err, code.ParamErr) {
		t.Fatalf("bad estado err = %v, want ParamErr", err)
	}

	otro := int64(9999)
	if _, err := svc.UpdateEquipo(ctx, eq.ID, &core.UpdateEquipoReq{IdLaboratorio: &otro}); !isCode(err, code.ParamErr) {
		t.Fatalf("unknown lab err = %v, want ParamErr", err)
	}
}

func TestListEquiposFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	labA := mustLab(t, svc, "A")
	labB := mustLab(t, svc, "B")

	seed := []core.CreateEquipoReq{
		{Nombre: "Microscopio", Modelo: "M-1", Estado: "Operativo", IdLaboratorio: labA.ID},
		{Nombre: "Centrífuga", Modelo: "C-1", Estado: "Mantenimiento", IdLaboratorio: labA.ID},
		{Nombre: "Agitador", Modelo: "A-1", Estado: "Operativo", IdLaboratorio: labB.ID},
	}
	for i := range seed {
		if _, err := svc.CreateEquipo(ctx, &seed[i]); err != nil {
			t.Fatalf("seed equipo %s err: %v", seed[i].Nombre, err)
		}
	}

	all, err := svc.ListEquipos(ctx, &core.ListEquiposReq{})
	if err != nil {
		t.Fatalf("list err: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	operativos, err := svc.ListEquipos(ctx, &core.ListEquiposReq{Estado: "Operativo"})
	if err != nil {
		t.Fatalf("list by estado err: %v", err)
	}
	if len(operativos) != 2 {
		t.Fatalf("operativos = %d, want 2", len(operativos))
	}

	enA, err := svc.ListEquipos(ctx, &core.ListEquiposReq{IdLaboratorio: labA.ID})
	if err != nil {
		t.Fatalf("list by lab err: %v", err)
	}
	if len(enA) != 2 {
		t.Fatalf("en lab A = %d, want 2", len(enA))
	}

	if _, err := svc.ListEquipos(ctx, &core.ListEquiposReq{Estado: "Roto"}); !isCode(err, code.ParamErr) {
		t.Fatalf("bad estado filter err = %v, want ParamErr", err)
	}
}

func TestListLaboratoriosPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	for _, n := range []string{"Alfa", "Beta", "Gamma"} {
		mustLab(t, svc, n)
	}

	req := &core.ListLaboratoriosReq{}
	req.Limit = 2
	page, err := svc.ListLaboratorios(ctx, req)
	if err != nil {
		t.Fatalf("list err: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("len = %d, want 2", len(page))
	}

	req = &core.ListLaboratoriosReq{Nombre: "amm"}
	byName, err := svc.ListLaboratorios(ctx, req)
	if err != nil {
		t.Fatalf("list by nombre err: %v", err)
	}
	if len(byName) != 1 || byName[0].Nombre != "Gamma" {
		t.Fatalf("byName = %+v, want only Gamma", byName)
	}
}
