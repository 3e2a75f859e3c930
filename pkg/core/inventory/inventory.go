package inventory

import "context"

// Service covers the laboratory and equipment directories. Equipment always
// references an existing laboratory; deleting a laboratory that still has
// equipment is refused.
type Service interface {
	CreateLaboratorio(ctx context.Context, req *CreateLaboratorioReq) (*LaboratorioResp, error)
	ListLaboratorios(ctx context.Context, req *ListLaboratoriosReq) ([]*LaboratorioResp, error)
	GetLaboratorio(ctx context.Context, id int64) (*LaboratorioResp, error)
	UpdateLaboratorio(ctx context.Context, id int64, req *UpdateLaboratorioReq) (*LaboratorioResp, error)
	DeleteLaboratorio(ctx context.Context, id int64) error

	CreateEquipo(ctx context.Context, req *CreateEquipoReq) (*EquipoResp, error)
	ListEquipos(ctx context.Context, req *ListEquiposReq) ([]*EquipoResp, error)
	GetEquipo(ctx context.Context, id int64) (*EquipoResp, error)
	UpdateEquipo(ctx context.Context, id int64, req *UpdateEquipoReq) (*EquipoResp, error)
	DeleteEquipo(ctx context.Context, id int64) error
}
