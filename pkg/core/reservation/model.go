package reservation

import (
	"time"

	"github.com/unilabs/labplatform/pkg/common"
	"github.com/unilabs/labplatform/pkg/repo"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

type CreateReservaReq struct {
	FechaInicio time.Time `json:"FechaInicio"`
	FechaFin    time.Time `json:"FechaFin"`
	IdUsuario   int64     `json:"IdUsuario"`
	IdUbicacion int64     `json:"IdUbicacion"`
	Equipos     []int64   `json:"Equipos"`
}

type UpdateReservaReq struct {
	FechaInicio *time.Time `json:"FechaInicio"`
	FechaFin    *time.Time `json:"FechaFin"`
	Status      *string    `json:"Status"`
	Equipos     *[]int64   `json:"Equipos"`
}

type ListReservasReq struct {
	common.PageReq
	Status        string `form:"status"`
	IdLaboratorio int64  `form:"id_laboratorio"`
}

// ReservaResp carries the reservation with its equipment resolved to full
// records. Equipment the labs service cannot answer for is omitted.
type ReservaResp struct {
	ID            int64               `json:"Id"`
	FechaCreacion time.Time           `json:"FechaCreacion"`
	FechaInicio   time.Time           `json:"FechaInicio"`
	FechaFin      time.Time           `json:"FechaFin"`
	IdUsuario     int64               `json:"IdUsuario"`
	IdUbicacion   int64               `json:"IdUbicacion"`
	Status        model.ReservaStatus `json:"Status"`
	Equipos       []*repo.EquipoInfo  `json:"Equipos"`
}
