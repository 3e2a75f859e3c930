package reservation

import (
	"context"
	"time"

	"github.com/unilabs/labplatform/pkg/middleware/db"
	"github.com/unilabs/labplatform/pkg/repo"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

type reservationImpl struct {
	*db.Datastore
}

func New() repo.ReservationRepo {
	return &reservationImpl{Datastore: db.DB()}
}

func (r *reservationImpl) CreateReserva(ctx context.Context, data *model.Reserva) error {
	return r.DBWithContext(ctx).Create(data).Error
}

func (r *reservationImpl) GetReservaByID(ctx context.Context, id int64) (*model.Reserva, error) {
	data := &model.Reserva{}
	err := r.DBWithContext(ctx).Where("\"Id\" = ?", id).First(data).Error
	return data, err
}

func (r *reservationImpl) ListReservas(ctx context.Context, filter *repo.ReservaFilter) ([]*model.Reserva, error) {
	var datas []*model.Reserva
	filter.Normalize()
	query := r.DBWithContext(ctx).Model(&model.Reserva{})
	if filter.Status != "" {
		query = query.Where("\"Status\" = ?", filter.Status)
	}
	if filter.IdLaboratorio != 0 {
		query = query.Where("\"IdUbicacion\" = ?", filter.IdLaboratorio)
	}
	err := query.Order("\"FechaInicio\"").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&datas).Error
	return datas, err
}

func (r *reservationImpl) UpdateReserva(ctx context.Context, id int64, updates map[string]any) error {
	return r.DBWithContext(ctx).Model(&model.Reserva{}).
		Where("\"Id\" = ?", id).
		Updates(updates).Error
}

func (r *reservationImpl) DeleteReserva(ctx context.Context, id int64) (bool, error) {
	result := r.DBWithContext(ctx).Where("\"Id\" = ?", id).Delete(&model.Reserva{})
	return result.RowsAffected > 0, result.Error
}

func (r *reservationImpl) HasOverlap(ctx context.Context, labID int64, inicio, fin time.Time) (bool, error) {
	var count int64
	err := r.DBWithContext(ctx).Model(&model.Reserva{}).
		Where("\"IdUbicacion\" = ?", labID).
		Where("\"Status\" IN ?", []model.ReservaStatus{model.ReservaConfirmed, model.ReservaCompleted}).
		Where("\"FechaInicio\" < ? AND \"FechaFin\" > ?", fin, inicio).
		Count(&count).Error
	return count > 0, err
}
