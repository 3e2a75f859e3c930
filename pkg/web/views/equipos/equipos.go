package equipos

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unilabs/labplatform/pkg/common"
	"github.com/unilabs/labplatform/pkg/common/code"
	"github.com/unilabs/labplatform/pkg/core/inventory"
	impl "github.com/unilabs/labplatform/pkg/core/inventory/inventory"
	"github.com/unilabs/labplatform/pkg/middleware/logger"
)

type Handle struct {
	iService inventory.Service
}

func NewEquipos() *Handle {
	return &Handle{iService: impl.New()}
}

func NewEquiposWithService(svc inventory.Service) *Handle {
	return &Handle{iService: svc}
}

func (h *Handle) Create(ctx *gin.Context) {
	req := &inventory.CreateEquipoReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse CreateEquipo param err: %+v", err)
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.iService.CreateEquipo(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "CreateEquipo err: %+v", err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyCreated(ctx, nil, resp)
}

func (h *Handle) List(ctx *gin.Context) {
	req := &inventory.ListEquiposReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse ListEquipos param err: %+v", err)
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.iService.ListEquipos(ctx, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	resp, err := h.iService.GetEquipo(ctx, id)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	req := &inventory.UpdateEquipoReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse UpdateEquipo param err: %+v", err)
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.iService.UpdateEquipo(ctx, id, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := h.iService.DeleteEquipo(ctx, id); err != nil {
		logger.Errorf(ctx, "DeleteEquipo err: %+v", err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyMsg(ctx, "Equipo eliminado correctamente")
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		common.ReplyErr(ctx, code.ParamErr.WithMsg("id inválido"))
		return 0, false
	}
	return id, true
}
