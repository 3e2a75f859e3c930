package reservation

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/unilabs/labplatform/internal/config"
	"github.com/unilabs/labplatform/pkg/common/code"
	core "github.com/unilabs/labplatform/pkg/core/reservation"
	"github.com/unilabs/labplatform/pkg/middleware/logger"
	"github.com/unilabs/labplatform/pkg/repo"
	labsClient "github.com/unilabs/labplatform/pkg/repo/labs"
	"github.com/unilabs/labplatform/pkg/repo/model"
	resStore "github.com/unilabs/labplatform/pkg/repo/reservation"
)

type booking struct {
	store repo.ReservationRepo
	labs  repo.LabsClient
}

func New() core.Service {
	return NewWith(resStore.New(), labsClient.New(config.Global().Labs.Addr))
}

func NewWith(store repo.ReservationRepo, labs repo.LabsClient) core.Service {
	return &booking{store: store, labs: labs}
}

func (b *booking) CreateReserva(ctx context.Context, req *core.CreateReservaReq) (*core.ReservaResp, error) {
	if req.FechaInicio.IsZero() || req.FechaFin.IsZero() || req.IdUsuario == 0 || req.IdUbicacion == 0 {
		return nil, code.ParamErr.WithMsg("FechaInicio, FechaFin, IdUsuario e IdUbicacion son obligatorios")
	}
	if !req.FechaFin.After(req.FechaInicio) {
		return nil, code.ParamErr.WithMsg("FechaFin debe ser posterior a FechaInicio")
	}

	overlap, err := b.store.HasOverlap(ctx, req.IdUbicacion, req.FechaInicio, req.FechaFin)
	if err != nil {
		return nil, code.QueryDataErr.WithErr(err)
	}
	if overlap {
		return nil, code.Conflict.WithMsg("Ya existe una reserva para ese laboratorio y rango de fechas.")
	}

	data := &model.Reserva{
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
		IdUsuario:   req.IdUsuario,
		IdUbicacion: req.IdUbicacion,
		Status:      model.ReservaPending,
		Equipos:     datatypes.NewJSONSlice(req.Equipos),
	}
	if err := b.store.CreateReserva(ctx, data); err != nil {
		return nil, code.CreateDataErr.WithErr(err)
	}
	return b.toResp(ctx, data), nil
}

func (b *booking) ListReservas(ctx context.Context, req *core.ListReservasReq) ([]*core.ReservaResp, error) {
	if req.Status != "" && !model.ReservaStatus(req.Status).Valid() {
		return nil, code.ParamErr.WithMsg("status de reserva no válido")
	}
	datas, err := b.store.ListReservas(ctx, &repo.ReservaFilter{
		PageReq:       req.PageReq,
		Status:        model.ReservaStatus(req.Status),
		IdLaboratorio: req.IdLaboratorio,
	})
	if err != nil {
		return nil, code.QueryDataErr.WithErr(err)
	}
	resps := make([]*core.ReservaResp, 0, len(datas))
	for _, r := range datas {
		resps = append(resps, b.toResp(ctx, r))
	}
	return resps, nil
}

func (b *booking) GetReserva(ctx context.Context, id int64) (*core.ReservaResp, error) {
	data, err := b.store.GetReservaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound.WithMsg("Reserva no encontrada")
		}
		return nil, code.QueryDataErr.WithErr(err)
	}
	return b.toResp(ctx, data), nil
}

func (b *booking) UpdateReserva(ctx context.Context, id int64, req *core.UpdateReservaReq) (*core.ReservaResp, error) {
	current, err := b.store.GetReservaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound.WithMsg("Reserva no encontrada")
		}
		return nil, code.QueryDataErr.WithErr(err)
	}

	updates := map[string]any{}
	inicio, fin := current.FechaInicio, current.FechaFin
	if req.FechaInicio != nil {
		inicio = *req.FechaInicio
		updates["FechaInicio"] = inicio
	}
	if req.FechaFin != nil {
		fin = *req.FechaFin
		updates["FechaFin"] = fin
	}
	if !fin.After(inicio) {
		return nil, code.ParamErr.WithMsg("FechaFin debe ser posterior a FechaInicio")
	}
	if req.Status != nil {
		if !model.ReservaStatus(*req.Status).Valid() {
			return nil, code.ParamErr.WithMsg("status de reserva no válido")
		}
		updates["Status"] = *req.Status
	}
	if req.Equipos != nil {
		updates["Equipos"] = datatypes.NewJSONSlice(*req.Equipos)
	}

	if len(updates) > 0 {
		if err := b.store.UpdateReserva(ctx, id, updates); err != nil {
			return nil, code.UpdateDataErr.WithErr(err)
		}
	}
	return b.GetReserva(ctx, id)
}

func (b *booking) DeleteReserva(ctx context.Context, id int64) error {
	deleted, err := b.store.DeleteReserva(ctx, id)
	if err != nil {
		return code.DeleteDataErr.WithErr(err)
	}
	if !deleted {
		return code.NotFound.WithMsg("Reserva no encontrada")
	}
	return nil
}

// toResp resolves equipment ids against the labs service. Failed lookups
// only drop that equipment from the reply, the reservation itself always
// comes back.
func (b *booking) toResp(ctx context.Context, r *model.Reserva) *core.ReservaResp {
	equipos := make([]*repo.EquipoInfo, 0, len(r.Equipos))
	for _, id := range r.Equipos {
		info, err := b.labs.GetEquipo(ctx, id)
		if err != nil {
			logger.Warnf(ctx, "resolve equipo %d for reserva %d err: %v", id, r.ID, err)
			continue
		}
		equipos = append(equipos, info)
	}
	return &core.ReservaResp{
		ID:            r.ID,
		FechaCreacion: r.FechaCreacion,
		FechaInicio:   r.FechaInicio,
		FechaFin:      r.FechaFin,
		IdUsuario:     r.IdUsuario,
		IdUbicacion:   r.IdUbicacion,
		Status:        r.Status,
		Equipos:       equipos,
	}
}
