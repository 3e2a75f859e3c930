package usuarios

import (
	"github.com/gin-gonic/gin"

	"github.com/unilabs/labplatform/pkg/common"
	"github.com/unilabs/labplatform/pkg/common/code"
	"github.com/unilabs/labplatform/pkg/core/account"
	impl "github.com/unilabs/labplatform/pkg/core/account/user"
	"github.com/unilabs/labplatform/pkg/middleware/logger"
)

type Handle struct {
	aService account.Service
}

func NewUsuarios() *Handle {
	return &Handle{aService: impl.New()}
}

func NewUsuariosWithService(svc account.Service) *Handle {
	return &Handle{aService: svc}
}

func (h *Handle) CreateUser(ctx *gin.Context) {
	req := &account.CreateUserReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse CreateUser param err: %+v", err)
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.aService.CreateUser(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "CreateUser err: %+v", err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyCreated(ctx, nil, resp)
}

// ListUsers keeps the original contract: 201 with the password-free list.
func (h *Handle) ListUsers(ctx *gin.Context) {
	resp, err := h.aService.ListUsers(ctx)
	if err != nil {
		logger.Errorf(ctx, "ListUsers err: %+v", err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyCreated(ctx, nil, resp)
}
