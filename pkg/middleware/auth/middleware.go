package auth

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unilabs/labplatform/internal/config"
	"github.com/unilabs/labplatform/pkg/common"
	"github.com/unilabs/labplatform/pkg/common/code"
	"github.com/unilabs/labplatform/pkg/middleware/logger"
	"github.com/unilabs/labplatform/pkg/repo/model"
	"github.com/unilabs/labplatform/pkg/utils"
)

const USERKEY = "AUTH_USER_KEY"

var (
	issuer     utils.TokenIssuer
	issuerOnce sync.Once
)

// Issuer builds the process-wide token issuer from global config.
func Issuer() utils.TokenIssuer {
	issuerOnce.Do(func() {
		conf := config.Global().Auth
		issuer = utils.TokenIssuer{
			Secret: []byte(conf.JWTSecret),
			TTL:    time.Duration(conf.TokenTTLDays) * 24 * time.Hour,
		}
	})
	return issuer
}

// Auth is the inbound-request gate: it requires a valid bearer token and
// stores the decoded claims on the context.
func Auth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			abort(ctx, code.UnLogin)
			return
		}
		tokens := strings.SplitN(authHeader, " ", 2)
		if len(tokens) != 2 || tokens[0] != "Bearer" {
			abort(ctx, code.InvalidToken)
			return
		}
		claims, err := Issuer().Parse(tokens[1])
		if err != nil {
			logger.Errorf(ctx, "token validation failed: %v", err)
			abort(ctx, code.InvalidToken)
			return
		}
		ctx.Set(USERKEY, claims)
		ctx.Next()
	}
}

// RequireTipo allows only the given roles past. It must run after Auth.
func RequireTipo(tipos ...model.UserTipo) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := GetCurrentUser(ctx)
		if claims == nil {
			abort(ctx, code.UnLogin)
			return
		}
		for _, t := range tipos {
			if model.UserTipo(claims.Tipo) == t {
				ctx.Next()
				return
			}
		}
		ctx.JSON(http.StatusForbidden, &common.ErrResp{Error: code.Forbidden.Msg})
		ctx.Abort()
	}
}

func GetCurrentUser(ctx context.Context) *utils.Claims {
	claims, _ := ctx.Value(USERKEY).(*utils.Claims)
	return claims
}

func abort(ctx *gin.Context, ce *code.Error) {
	ctx.JSON(ce.Status, &common.ErrResp{Error: ce.Msg})
	ctx.Abort()
}
