package reservas

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/unilabs/labplatform/internal/config"
	"github.com/unilabs/labplatform/pkg/middleware/db"
	"github.com/unilabs/labplatform/pkg/web"
)

func NewServer() *cobra.Command {
	return &cobra.Command{
		Use:          "reservas",
		Long:         "Start the reservation service",
		SilenceUsage: true,
		PreRunE:      initResources,
		RunE: func(cmd *cobra.Command, _ []string) error {
			router := gin.New()
			web.NewReservasRouter(router)
			return web.Run(cmd.Root().Context(), router, config.Global().Server.ReservasPort, "reservas")
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.ClosePostgres(cmd.Context())
			return nil
		},
	}
}

func initResources(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	db.InitPostgres(cmd.Context(), &db.Config{
		Host: conf.Database.Host, Port: conf.Database.Port,
		User: conf.Database.User, PW: conf.Database.Password,
		DBName: conf.Database.Name, SSLMode: conf.Database.SSLMode,
		LogConf: db.LogConf{Level: conf.Log.LogLevel},
	})
	return nil
}
