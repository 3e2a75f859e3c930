package account

import "github.com/unilabs/labplatform/pkg/repo/model"

type LoginReq struct {
	Correo     string `json:"Correo"`
	Contrasena string `json:"Contraseña"`
}

// UserResp is the user record with the password stripped.
type UserResp struct {
	ID     int64          `json:"Id"`
	Nombre string         `json:"Nombre"`
	Correo string         `json:"Correo"`
	Tipo   model.UserTipo `json:"Tipo"`
}

type LoginResp struct {
	Token   string    `json:"token"`
	Usuario *UserResp `json:"usuario"`
}

type CreateUserReq struct {
	Nombre     string `json:"Nombre"`
	Correo     string `json:"Correo"`
	Tipo       string `json:"Tipo"`
	Contrasena string `json:"Contraseña"`
}

type CreateUserResp struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}
