package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/unilabs/labplatform/internal/config"
	"github.com/unilabs/labplatform/pkg/common/code"
	"github.com/unilabs/labplatform/pkg/core/account"
	"github.com/unilabs/labplatform/pkg/middleware/auth"
	"github.com/unilabs/labplatform/pkg/middleware/logger"
	"github.com/unilabs/labplatform/pkg/repo"
	accStore "github.com/unilabs/labplatform/pkg/repo/account"
	"github.com/unilabs/labplatform/pkg/repo/model"
	"github.com/unilabs/labplatform/pkg/utils"
)

// The four authentication failure kinds stay distinct internally (they are
// logged) but the client always sees the same 401 reply.
var (
	ErrCredentialsFormat = errors.New("correo y contraseña son campos obligatorios")
	ErrUserNotFound      = errors.New("el usuario no existe")
	ErrNoPasswordSet     = errors.New("el usuario no tiene contraseña asignada")
	ErrWrongPassword     = errors.New("contraseña incorrecta")
)

type userImpl struct {
	store  repo.AccountRepo
	hasher utils.BcryptHasher
	issuer utils.TokenIssuer
}

func New() account.Service {
	return NewWithStore(accStore.New())
}

// NewWithStore lets tests inject a store over their own database handle.
func NewWithStore(store repo.AccountRepo) account.Service {
	return &userImpl{
		store:  store,
		hasher: utils.BcryptHasher{Cost: config.Global().Auth.BcryptCost},
		issuer: auth.Issuer(),
	}
}

func (u *userImpl) Login(ctx context.Context, req *account.LoginReq) (*account.LoginResp, error) {
	if req.Correo == "" || req.Contrasena == "" {
		return nil, code.AuthFailed.WithErr(ErrCredentialsFormat)
	}

	data, err := u.store.GetUserByCorreo(ctx, req.Correo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.AuthFailed.WithErr(ErrUserNotFound)
		}
		return nil, code.QueryDataErr.WithErr(err)
	}

	if data.Contrasena == nil || *data.Contrasena == "" {
		return nil, code.AuthFailed.WithErr(ErrNoPasswordSet)
	}

	if !u.hasher.Verify(req.Contrasena, *data.Contrasena) {
		return nil, code.AuthFailed.WithErr(ErrWrongPassword)
	}

	token, err := u.issuer.Issue(data.ID, string(data.Tipo))
	if err != nil {
		logger.Errorf(ctx, "issue token err: %+v", err)
		return nil, code.InternalErr.WithErr(err)
	}

	return &account.LoginResp{
		Token:   token,
		Usuario: toUserResp(data),
	}, nil
}

func (u *userImpl) CreateUser(ctx context.Context, req *account.CreateUserReq) (*account.CreateUserResp, error) {
	if req.Nombre == "" || req.Correo == "" || req.Tipo == "" || req.Contrasena == "" {
		return nil, code.ParamErr.WithMsg("todos los campos son obligatorios")
	}
	tipo := model.UserTipo(req.Tipo)
	if !tipo.Valid() {
		return nil, code.ParamErr.WithMsg("tipo de usuario no válido")
	}

	taken, err := u.store.ExistsUserByCorreo(ctx, req.Correo)
	if err != nil {
		return nil, code.QueryDataErr.WithErr(err)
	}
	if taken {
		return nil, code.Conflict.WithMsg("el correo ya está registrado")
	}

	digest, err := u.hasher.Hash(req.Contrasena)
	if err != nil {
		return nil, code.InternalErr.WithErr(err)
	}

	data := &model.Usuario{
		Nombre:     req.Nombre,
		Correo:     req.Correo,
		Tipo:       tipo,
		Contrasena: &digest,
	}
	if err := u.store.CreateUser(ctx, data); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.Conflict.WithMsg("el correo ya está registrado")
		}
		return nil, code.CreateDataErr.WithErr(err)
	}

	return &account.CreateUserResp{
		Message: "Usuario creado correctamente",
		UserID:  data.ID,
	}, nil
}

func (u *userImpl) ListUsers(ctx context.Context) ([]*account.UserResp, error) {
	datas, err := u.store.ListUsers(ctx)
	if err != nil {
		return nil, code.QueryDataErr.WithErr(err)
	}
	resps := make([]*account.UserResp, 0, len(datas))
	for _, d := range datas {
		resps = append(resps, toUserResp(d))
	}
	return resps, nil
}

func toUserResp(d *model.Usuario) *account.UserResp {
	return &account.UserResp{
		ID:     d.ID,
		Nombre: d.Nombre,
		Correo: d.Correo,
		Tipo:   d.Tipo,
	}
}
