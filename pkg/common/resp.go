package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unilabs/labplatform/pkg/common/code"
)

// Wire envelope: success replies {"data": ...} or {"message": ...},
// failures reply {"error": "<stable message>"}. Internal detail never
// reaches the client, it belongs in the log.

type DataResp struct {
	Data any `json:"data"`
}

type MsgResp struct {
	Message string `json:"message"`
}

type ErrResp struct {
	Error string `json:"error"`
}

// Reply answers 200 with data, or maps err onto the envelope.
func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	if len(data) == 0 {
		ctx.JSON(http.StatusOK, &MsgResp{Message: "ok"})
		return
	}
	ctx.JSON(http.StatusOK, &DataResp{Data: data[0]})
}

// ReplyCreated answers 201 with data on success.
func ReplyCreated(ctx *gin.Context, err error, data any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, &DataResp{Data: data})
}

// ReplyMsg answers 200 with a bare message envelope.
func ReplyMsg(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusOK, &MsgResp{Message: msg})
}

func ReplyErr(ctx *gin.Context, err error) {
	var ce *code.Error
	if errors.As(err, &ce) {
		ctx.JSON(ce.Status, &ErrResp{Error: ce.Msg})
		return
	}
	ctx.JSON(http.StatusInternalServerError, &ErrResp{Error: code.InternalErr.Msg})
}
