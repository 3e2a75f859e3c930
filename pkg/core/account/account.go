package account

import "context"

// Service is the user directory plus the authentication flow on top of it.
type Service interface {
	Login(ctx context.Context, req *LoginReq) (*LoginResp, error)
	CreateUser(ctx context.Context, req *CreateUserReq) (*CreateUserResp, error)
	ListUsers(ctx context.Context) ([]*UserResp, error)
}
