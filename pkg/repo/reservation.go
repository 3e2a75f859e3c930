package repo

import (
	"context"
	"time"

	"github.com/unilabs/labplatform/pkg/common"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

type ReservaFilter struct {
	common.PageReq
	Status        model.ReservaStatus
	IdLaboratorio int64
}

type ReservationRepo interface {
	CreateReserva(ctx context.Context, data *model.Reserva) error
	GetReservaByID(ctx context.Context, id int64) (*model.Reserva, error)
	ListReservas(ctx context.Context, filter *ReservaFilter) ([]*model.Reserva, error)
	UpdateReserva(ctx context.Context, id int64, updates map[string]any) error
	DeleteReserva(ctx context.Context, id int64) (bool, error)
	// HasOverlap reports whether a confirmed or completed reservation for the
	// laboratory intersects the [inicio, fin) window.
	HasOverlap(ctx context.Context, labID int64, inicio, fin time.Time) (bool, error)
}

// EquipoInfo is the labs-service projection of an equipment record as seen
// by the reservas service.
type EquipoInfo struct {
	ID            int64  `json:"IdEquipo"`
	Nombre        string `json:"Nombre"`
	Modelo        string `json:"Modelo"`
	Estado        string `json:"Estado"`
	IdLaboratorio int64  `json:"IdLaboratorio"`
}

// LabsClient resolves equipment records from the labs service.
type LabsClient interface {
	GetEquipo(ctx context.Context, id int64) (*EquipoInfo, error)
}
