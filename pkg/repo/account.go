package repo

import (
	"context"

	"github.com/unilabs/labplatform/pkg/repo/model"
)

type AccountRepo interface {
	CreateUser(ctx context.Context, data *model.Usuario) error
	GetUserByCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	ExistsUserByCorreo(ctx context.Context, correo string) (bool, error)
	// ListUsers never selects the password column.
	ListUsers(ctx context.Context) ([]*model.Usuario, error)
}
