package migrate

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/unilabs/labplatform/internal/config"
	"github.com/unilabs/labplatform/pkg/core/account"
	user "github.com/unilabs/labplatform/pkg/core/account/user"
	"github.com/unilabs/labplatform/pkg/middleware/db"
	"github.com/unilabs/labplatform/pkg/middleware/logger"
	"github.com/unilabs/labplatform/pkg/repo/migrate"
	"github.com/unilabs/labplatform/pkg/repo/model"
)

func New() *cobra.Command {
	var seedAdmin bool

	cmd := &cobra.Command{
		Use:          "migrate",
		Long:         "Run database migrations",
		SilenceUsage: true,
		PreRunE:      initResources,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Root().Context()
			if err := migrate.Table(ctx); err != nil {
				return err
			}
			if seedAdmin {
				return seedAdminUser(ctx)
			}
			return nil
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.ClosePostgres(cmd.Context())
			return nil
		},
	}
	cmd.Flags().BoolVar(&seedAdmin, "seed-admin", false, "seed a bootstrap administrator account")
	return cmd
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

// seedAdminUser creates the bootstrap administrator once. Without it no one
// can reach the gated /users endpoints of a fresh deployment.
func seedAdminUser(ctx context.Context) error {
	conf := config.Global().Auth
	svc := user.New()
	_, err := svc.CreateUser(ctx, &account.CreateUserReq{
		Nombre:     "Administrador",
		Correo:     conf.SeedCorreo,
		Tipo:       string(model.Administrador),
		Contrasena: conf.SeedContrasena,
	})
	if err != nil {
		logger.Warnf(ctx, "seed admin skipped: %v", err)
		return nil
	}
	logger.Infof(ctx, "seeded administrator %s", conf.SeedCorreo)
	return nil
}
