package web

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/unilabs/labplatform/pkg/middleware/auth"
	"github.com/unilabs/labplatform/pkg/middleware/logger"
	"github.com/unilabs/labplatform/pkg/repo/model"
	"github.com/unilabs/labplatform/pkg/web/views/equipos"
	"github.com/unilabs/labplatform/pkg/web/views/health"
	"github.com/unilabs/labplatform/pkg/web/views/laboratorios"
	"github.com/unilabs/labplatform/pkg/web/views/login"
	"github.com/unilabs/labplatform/pkg/web/views/reservas"
	"github.com/unilabs/labplatform/pkg/web/views/usuarios"
)

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	g.Use(cors.Default())
	g.Use(logger.LogWithWriter())
	g.Use(gin.Recovery())
}

// NewAuthRouter mounts the authentication service surface. User management
// is restricted to administrators; login and health stay open.
func NewAuthRouter(g *gin.Engine) {
	installMiddleware(g)

	g.GET("/health", health.Health)
	g.GET("/health/live", health.Live)
	g.GET("/health/ready", health.Ready)

	l := login.NewLogin()
	g.POST("/login", l.Login)

	u := usuarios.NewUsuarios()
	userGroup := g.Group("/users", auth.Auth(), auth.RequireTipo(model.Administrador))
	userGroup.POST("", u.CreateUser)
	userGroup.GET("", u.ListUsers)
}

// NewLabsRouter mounts the inventory service surface. Reads are public,
// mutations require a valid bearer token.
func NewLabsRouter(g *gin.Engine) {
	installMiddleware(g)

	g.GET("/health", health.Health)
	g.GET("/health/live", health.Live)
	g.GET("/health/ready", health.Ready)

	lh := laboratorios.NewLaboratorios()
	g.GET("/laboratorios", lh.List)
	g.GET("/laboratorios/:id", lh.Get)

	labWrite := g.Group("/laboratorios", auth.Auth())
	labWrite.POST("", lh.Create)
	labWrite.PUT("/:id", lh.Update)
	labWrite.DELETE("/:id", lh.Delete)

	eh := equipos.NewEquipos()
	g.GET("/equipos", eh.List)
	g.GET("/equipos/:id", eh.Get)

	eqWrite := g.Group("/equipos", auth.Auth())
	eqWrite.POST("", eh.Create)
	eqWrite.PUT("/:id", eh.Update)
	eqWrite.DELETE("/:id", eh.Delete)
}

// NewReservasRouter mounts the reservation service surface.
func NewReservasRouter(g *gin.Engine) {
	installMiddleware(g)

	g.GET("/health", health.Health)
	g.GET("/health/live", health.Live)
	g.GET("/health/ready", health.Ready)

	rh := reservas.NewReservas()
	g.GET("/reservas", rh.List)
	g.GET("/reservas/:id", rh.Get)

	resWrite := g.Group("/reservas", auth.Auth())
	resWrite.POST("", rh.Create)
	resWrite.PATCH("/:id", rh.Update)
	resWrite.DELETE("/:id", rh.Delete)
}
