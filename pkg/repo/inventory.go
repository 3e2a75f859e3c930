package repo

import (
	"context"

	"github.com/unilabs/labplatform/pkg/common"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

type LabFilter struct {
	common.PageReq
	Nombre string
}

type EquipoFilter struct {
	common.PageReq
	Estado        model.EquipoEstado
	IdLaboratorio int64
}

type InventoryRepo interface {
	CreateLaboratorio(ctx context.Context, data *model.Laboratorio) error
	GetLaboratorioByID(ctx context.Context, id int64) (*model.Laboratorio, error)
	ListLaboratorios(ctx context.Context, filter *LabFilter) ([]*model.Laboratorio, error)
	UpdateLaboratorio(ctx context.Context, id int64, updates map[string]any) error
	DeleteLaboratorio(ctx context.Context, id int64) (bool, error)
	ExistsLaboratorioByNombre(ctx context.Context, nombre string) (bool, error)
	CountEquiposByLaboratorio(ctx context.Context, labID int64) (int64, error)

	CreateEquipo(ctx context.Context, data *model.Equipo) error
	GetEquipoByID(ctx context.Context, id int64) (*model.Equipo, error)
	ListEquipos(ctx context.Context, filter *EquipoFilter) ([]*model.Equipo, error)
	UpdateEquipo(ctx context.Context, id int64, updates map[string]any) error
	DeleteEquipo(ctx context.Context, id int64) (bool, error)
	ExistsEquipoByNombre(ctx context.Context, nombre string) (bool, error)
}
