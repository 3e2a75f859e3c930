package inventory

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/unilabs/labplatform/pkg/common/code"
	core "github.com/unilabs/labplatform/pkg/core/inventory"
	"github.com/unilabs/labplatform/pkg/repo"
	invStore "github.com/unilabs/labplatform/pkg/repo/inventory"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

type directory struct {
	store repo.InventoryRepo
}

func New() core.Service {
	return NewWithStore(invStore.New())
}

func NewWithStore(store repo.InventoryRepo) core.Service {
	return &directory{store: store}
}

func (d *directory) CreateLaboratorio(ctx context.Context, req *core.CreateLaboratorioReq) (*core.LaboratorioResp, error) {
	if req.Nombre == "" || req.Descripcion == "" {
		return nil, code.ParamErr.WithMsg("Nombre y Descripcion son campos obligatorios")
	}

	taken, err := d.store.ExistsLaboratorioByNombre(ctx, req.Nombre)
	if err != nil {
		return nil, code.QueryDataErr.WithErr(err)
	}
	if taken {
		return nil, code.Conflict.WithMsg("ya existe un laboratorio con ese nombre")
	}

	data := &model.Laboratorio{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := d.store.CreateLaboratorio(ctx, data); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.Conflict.WithMsg("ya existe un laboratorio con ese nombre")
		}
		return nil, code.CreateDataErr.WithErr(err)
	}
	return toLabResp(data), nil
}

func (d *directory) ListLaboratorios(ctx context.Context, req *core.ListLaboratoriosReq) ([]*core.LaboratorioResp, error) {
	datas, err := d.store.ListLaboratorios(ctx, &repo.LabFilter{
		PageReq: req.PageReq,
		Nombre:  req.Nombre,
	})
	if err != nil {
		return nil, code.QueryDataErr.WithErr(err)
	}
	resps := make([]*core.LaboratorioResp, 0, len(datas))
	for _, l := range datas {
		resps = append(resps, toLabResp(l))
	}
	return resps, nil
}

func (d *directory) GetLaboratorio(ctx context.Context, id int64) (*core.LaboratorioResp, error) {
	data, err := d.store.GetLaboratorioByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound.WithMsg("Laboratorio no encontrado")
		}
		return nil, code.QueryDataErr.WithErr(err)
	}
	return toLabResp(data), nil
}

func (d *directory) UpdateLaboratorio(ctx context.Context, id int64, req *core.UpdateLaboratorioReq) (*core.LaboratorioResp, error) {
	if _, err := d.GetLaboratorio(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Nombre != nil {
		if *req.Nombre == "" {
			return nil, code.ParamErr.WithMsg("Nombre no puede estar vacío")
		}
		updates["Nombre"] = *req.Nombre
	}
	if req.Descripcion != nil {
		if *req.Descripcion == "" {
			return nil, code.ParamErr.WithMsg("Descripcion no puede estar vacía")
		}
		updates["Descripción"] = *req.Descripcion
	}
	if len(updates) > 0 {
		if err := d.store.UpdateLaboratorio(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, code.Conflict.WithMsg("ya existe un laboratorio con ese nombre")
			}
			return nil, code.UpdateDataErr.WithErr(err)
		}
	}
	return d.GetLaboratorio(ctx, id)
}

func (d *directory) DeleteLaboratorio(ctx context.Context, id int64) error {
	inUse, err := d.store.CountEquiposByLaboratorio(ctx, id)
	if err != nil {
		return code.QueryDataErr.WithErr(err)
	}
	if inUse > 0 {
		return code.Conflict.WithMsg("el laboratorio tiene equipos asignados")
	}

	deleted, err := d.store.DeleteLaboratorio(ctx, id)
	if err != nil {
		return code.DeleteDataErr.WithErr(err)
	}
	if !deleted {
		return code.NotFound.WithMsg("Laboratorio no encontrado")
	}
	return nil
}

func (d *directory) CreateEquipo(ctx context.Context, req *core.CreateEquipoReq) (*core.EquipoResp, error) {
	if req.Nombre == "" || req.Modelo == "" || req.Estado == "" || req.IdLaboratorio == 0 {
		return nil, code.ParamErr.WithMsg("todos los campos son obligatorios")
	}
	estado := model.EquipoEstado(req.Estado)
	if !estado.Valid() {
		return nil, code.ParamErr.WithMsg("estado de equipo no válido")
	}
	if _, err := d.GetLaboratorio(ctx, req.IdLaboratorio); err != nil {
		var ce *code.Error
		if errors.As(err, &ce) && errors.Is(ce, code.NotFound) {
			return nil, code.ParamErr.WithMsg("el laboratorio indicado no existe")
		}
		return nil, err
	}

	taken, err := d.store.ExistsEquipoByNombre(ctx, req.Nombre)
	if err != nil {
		return nil, code.QueryDataErr.WithErr(err)
	}
	if taken {
		return nil, code.Conflict.WithMsg("ya existe un equipo con ese nombre")
	}

	data := &model.Equipo{
		Nombre:        req.Nombre,
		Modelo:        req.Modelo,
		Estado:        estado,
		IdLaboratorio: req.IdLaboratorio,
	}
	if err := d.store.CreateEquipo(ctx, data); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.Conflict.WithMsg("ya existe un equipo con ese nombre")
		}
		return nil, code.CreateDataErr.WithErr(err)
	}
	return toEquipoResp(data), nil
}

func (d *directory) ListEquipos(ctx context.Context, req *core.ListEquiposReq) ([]*core.EquipoResp, error) {
	if req.Estado != "" && !model.EquipoEstado(req.Estado).Valid() {
		return nil, code.ParamErr.WithMsg("estado de equipo no válido")
	}
	datas, err := d.store.ListEquipos(ctx, &repo.EquipoFilter{
		PageReq:       req.PageReq,
		Estado:        model.EquipoEstado(req.Estado),
		IdLaboratorio: req.IdLaboratorio,
	})
	if err != nil {
		return nil, code.QueryDataErr.WithErr(err)
	}
	resps := make([]*core.EquipoResp, 0, len(datas))
	for _, e := range datas {
		resps = append(resps, toEquipoResp(e))
	}
	return resps, nil
}

func (d *directory) GetEquipo(ctx context.Context, id int64) (*core.EquipoResp, error) {
	data, err := d.store.GetEquipoByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound.WithMsg("Equipo no encontrado")
		}
		return nil, code.QueryDataErr.WithErr(err)
	}
	return toEquipoResp(data), nil
}

func (d *directory) UpdateEquipo(ctx context.Context, id int64, req *core.UpdateEquipoReq) (*core.EquipoResp, error) {
	if _, err := d.GetEquipo(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Nombre != nil {
		if *req.Nombre == "" {
			return nil, code.ParamErr.WithMsg("Nombre no puede estar vacío")
		}
		updates["Nombre"] = *req.Nombre
	}
	if req.Modelo != nil {
		if *req.Modelo == "" {
			return nil, code.ParamErr.WithMsg("Modelo no puede estar vacío")
		}
		updates["Modelo"] = *req.Modelo
	}
	if req.Estado != nil {
		if !model.EquipoEstado(*req.Estado).Valid() {
			return nil, code.ParamErr.WithMsg("estado de equipo no válido")
		}
		updates["Estado"] = *req.Estado
	}
	if req.IdLaboratorio != nil {
		if _, err := d.GetLaboratorio(ctx, *req.IdLaboratorio); err != nil {
			var ce *code.Error
			if errors.As(err, &ce) && errors.Is(ce, code.NotFound) {
				return nil, code.ParamErr.WithMsg("el laboratorio indicado no existe")
			}
			return nil, err
		}
		updates["IdLaboratorio"] = *req.IdLaboratorio
	}
	if len(updates) > 0 {
		if err := d.store.UpdateEquipo(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, code.Conflict.WithMsg("ya existe un equipo con ese nombre")
			}
			return nil, code.UpdateDataErr.WithErr(err)
		}
	}
	return d.GetEquipo(ctx, id)
}

func (d *directory) DeleteEquipo(ctx context.Context, id int64) error {
	deleted, err := d.store.DeleteEquipo(ctx, id)
	if err != nil {
		return code.DeleteDataErr.WithErr(err)
	}
	if !deleted {
		return code.NotFound.WithMsg("Equipo no encontrado")
	}
	return nil
}

func toLabResp(l *model.Laboratorio) *core.LaboratorioResp {
	return &core.LaboratorioResp{ID: l.ID, Nombre: l.Nombre, Descripcion: l.Descripcion}
}

func toEquipoResp(e *model.Equipo) *core.EquipoResp {
	return &core.EquipoResp{
		ID:            e.ID,
		Nombre:        e.Nombre,
		Modelo:        e.Modelo,
		Estado:        e.Estado,
		IdLaboratorio: e.IdLaboratorio,
	}
}
