package login

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

func NewLogin() *Handle {
	return &Handle{aService: impl.New()}
}

func NewLoginWithService(svc account.Service) *Handle {
	return &Handle{aService: svc}
}

// Login answers 201 with token+user on success. Every authentication
// failure kind maps to the same 401 reply so callers cannot probe which
// check failed.
func (h *Handle) Login(ctx *gin.Context) {
	req := &account.LoginReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse Login param err: %+v", err)
		common.ReplyErr(ctx, code.AuthFailed.WithErr(err))
		return
	}
	resp, err := h.aService.Login(ctx, req)
	if err != nil {
		logger.Warnf(ctx, "login rejected for %q: %v", req.Correo, err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyCreated(ctx, nil, resp)
}
