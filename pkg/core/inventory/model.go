package inventory

import (
	"github.com/unilabs/labplatform/pkg/common"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

type CreateLaboratorioReq struct {
	Nombre      string `json:"Nombre"`
	Descripcion string `json:"Descripcion"`
}

type UpdateLaboratorioReq struct {
	Nombre      *string `json:"Nombre"`
	Descripcion *string `json:"Descripcion"`
}

type ListLaboratoriosReq struct {
	common.PageReq
	Nombre string `form:"nombre"`
}

type LaboratorioResp struct {
	ID          int64  `json:"IdLaboratorio"`
	Nombre      string `json:"Nombre"`
	Descripcion string `json:"Descripcion"`
}

type CreateEquipoReq struct {
	Nombre        string `json:"Nombre"`
	Modelo        string `json:"Modelo"`
	Estado        string `json:"Estado"`
	IdLaboratorio int64  `json:"IdLaboratorio"`
}

type UpdateEquipoReq struct {
	Nombre        *string `json:"Nombre"`
	Modelo        *string `json:"Modelo"`
	Estado        *string `json:"Estado"`
	IdLaboratorio *int64  `json:"IdLaboratorio"`
}

type ListEquiposReq struct {
	common.PageReq
	Estado        string `form:"estado"`
	IdLaboratorio int64  `form:"id_laboratorio"`
}

type EquipoResp struct {
	ID            int64              `json:"IdEquipo"`
	Nombre        string             `json:"Nombre"`
	Modelo        string             `json:"Modelo"`
	Estado        model.EquipoEstado `json:"Estado"`
	IdLaboratorio int64              `json:"IdLaboratorio"`
}
