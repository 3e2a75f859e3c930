package reservas

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unilabs/labplatform/pkg/common"
	"github.com/unilabs/labplatform/pkg/common/code"
	"github.com/unilabs/labplatform/pkg/core/reservation"
	impl "github.com/unilabs/labplatform/pkg/core/reservation/reservation"
	"github.com/unilabs/labplatform/pkg/middleware/logger"
)

type Handle struct {
	rService reservation.Service
}

func NewReservas() *Handle {
	return &Handle{rService: impl.New()}
}

func NewReservasWithService(svc reservation.Service) *Handle {
	return &Handle{rService: svc}
}

func (h *Handle) Create(ctx *gin.Context) {
	req := &reservation.CreateReservaReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse CreateReserva param err: %+v", err)
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.rService.CreateReserva(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "CreateReserva err: %+v", err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyCreated(ctx, nil, resp)
}

func (h *Handle) List(ctx *gin.Context) {
	req := &reservation.ListReservasReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse ListReservas param err: %+v", err)
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.rService.ListReservas(ctx, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	resp, err := h.rService.GetReserva(ctx, id)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	req := &reservation.UpdateReservaReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse UpdateReserva param err: %+v", err)
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.rService.UpdateReserva(ctx, id, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := h.rService.DeleteReserva(ctx, id); err != nil {
		logger.Errorf(ctx, "DeleteReserva err: %+v", err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyMsg(ctx, "Reserva eliminada correctamente")
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		common.ReplyErr(ctx, code.ParamErr.WithMsg("id inválido"))
		return 0, false
	}
	return id, true
}
