package inventory

import (
	"context"

	"github.com/unilabs/labplatform/pkg/middleware/db"
	"github.com/unilabs/labplatform/pkg/repo"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

type inventoryImpl struct {
	*db.Datastore
}

func New() repo.InventoryRepo {
	return &inventoryImpl{Datastore: db.DB()}
}

func (i *inventoryImpl) CreateLaboratorio(ctx context.Context, data *model.Laboratorio) error {
	return i.DBWithContext(ctx).Create(data).Error
}

func (i *inventoryImpl) GetLaboratorioByID(ctx context.Context, id int64) (*model.Laboratorio, error) {
	data := &model.Laboratorio{}
	err := i.DBWithContext(ctx).Where("\"IdLaboratorio\" = ?", id).First(data).Error
	return data, err
}

func (i *inventoryImpl) ListLaboratorios(ctx context.Context, filter *repo.LabFilter) ([]*model.Laboratorio, error) {
	var datas []*model.Laboratorio
	filter.Normalize()
	query := i.DBWithContext(ctx).Model(&model.Laboratorio{})
	if filter.Nombre != "" {
		query = query.Where("\"Nombre\" LIKE ?", "%"+filter.Nombre+"%")
	}
	err := query.Order("\"Nombre\"").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&datas).Error
	return datas, err
}

func (i *inventoryImpl) UpdateLaboratorio(ctx context.Context, id int64, updates map[string]any) error {
	return i.DBWithContext(ctx).Model(&model.Laboratorio{}).
		Where("\"IdLaboratorio\" = ?", id).
		Updates(updates).Error
}

func (i *inventoryImpl) DeleteLaboratorio(ctx context.Context, id int64) (bool, error) {
	result := i.DBWithContext(ctx).Where("\"IdLaboratorio\" = ?", id).Delete(&model.Laboratorio{})
	return result.RowsAffected > 0, result.Error
}

func (i *inventoryImpl) ExistsLaboratorioByNombre(ctx context.Context, nombre string) (bool, error) {
	var count int64
	err := i.DBWithContext(ctx).Model(&model.Laboratorio{}).
		Where("\"Nombre\" = ?", nombre).Count(&count).Error
	return count > 0, err
}

func (i *inventoryImpl) CountEquiposByLaboratorio(ctx context.Context, labID int64) (int64, error) {
	var count int64
	err := i.DBWithContext(ctx).Model(&model.Equipo{}).
		Where("\"IdLaboratorio\" = ?", labID).Count(&count).Error
	return count, err
}

func (i *inventoryImpl) CreateEquipo(ctx context.Context, data *model.Equipo) error {
	return i.DBWithContext(ctx).Create(data).Error
}

func (i *inventoryImpl) GetEquipoByID(ctx context.Context, id int64) (*model.Equipo, error) {
	data := &model.Equipo{}
	err := i.DBWithContext(ctx).Where("\"IdEquipo\" = ?", id).First(data).Error
	return data, err
}

func (i *inventoryImpl) ListEquipos(ctx context.Context, filter *repo.EquipoFilter) ([]*model.Equipo, error) {
	var datas []*model.Equipo
	filter.Normalize()
	query := i.DBWithContext(ctx).Model(&model.Equipo{})
	if filter.Estado != "" {
		query = query.Where("\"Estado\" = ?", filter.Estado)
	}
	if filter.IdLaboratorio != 0 {
		query = query.Where("\"IdLaboratorio\" = ?", filter.IdLaboratorio)
	}
	err := query.Order("\"Nombre\"").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&datas).Error
	return datas, err
}

func (i *inventoryImpl) UpdateEquipo(ctx context.Context, id int64, updates map[string]any) error {
	return i.DBWithContext(ctx).Model(&model.Equipo{}).
		Where("\"IdEquipo\" = ?", id).
		Updates(updates).Error
}

func (i *inventoryImpl) DeleteEquipo(ctx context.Context, id int64) (bool, error) {
	result := i.DBWithContext(ctx).Where("\"IdEquipo\" = ?", id).Delete(&model.Equipo{})
	return result.RowsAffected > 0, result.Error
}

func (i *inventoryImpl) ExistsEquipoByNombre(ctx context.Context, nombre string) (bool, error) {
	var count int64
	err := i.DBWithContext(ctx).Model(&model.Equipo{}).
		Where("\"Nombre\" = ?", nombre).Count(&count).Error
	return count > 0, err
}
