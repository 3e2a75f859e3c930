package account

import (
	"context"

	"github.com/unilabs/labplatform/pkg/middleware/db"
	"github.com/unilabs/labplatform/pkg/repo"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

type accountImpl struct {
	*db.Datastore
}

func New() repo.AccountRepo {
	return &accountImpl{Datastore: db.DB()}
}

func (a *accountImpl) CreateUser(ctx context.Context, data *model.Usuario) error {
	return a.DBWithContext(ctx).Create(data).Error
}

func (a *accountImpl) GetUserByCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	data := &model.Usuario{}
	err := a.DBWithContext(ctx).Where("\"Correo\" = ?", correo).First(data).Error
	return data, err
}

func (a *accountImpl) ExistsUserByCorreo(ctx context.Context, correo string) (bool, error) {
	var count int64
	err := a.DBWithContext(ctx).Model(&model.Usuario{}).
		Where("\"Correo\" = ?", correo).Count(&count).Error
	return count > 0, err
}

func (a *accountImpl) ListUsers(ctx context.Context) ([]*model.Usuario, error) {
	var datas []*model.Usuario
	err := a.DBWithContext(ctx).
		Select("Id", "Nombre", "Correo", "Tipo").
		Order("\"Id\"").
		Find(&datas).Error
	return datas, err
}
