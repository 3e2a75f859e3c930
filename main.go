package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	authcmd "github.com/unilabs/labplatform/cmd/auth"
	labscmd "github.com/unilabs/labplatform/cmd/labs"
	migratecmd "github.com/unilabs/labplatform/cmd/migrate"
	reservascmd "github.com/unilabs/labplatform/cmd/reservas"
	"github.com/unilabs/labplatform/internal/config"
	"github.com/unilabs/labplatform/pkg/middleware/logger"
	"github.com/unilabs/labplatform/pkg/utils"
)

func main() {
	rootCtx := utils.SetupSignalContext()
	root := &cobra.Command{
		SilenceUsage:      true,
		Short:             "labplatform",
		Long:              "Lab platform - authentication, inventory and reservation services",
		PersistentPreRunE: initGlobalResource,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		PersistentPostRunE: cleanGlobalResource,
	}
	root.SetContext(rootCtx)
	root.AddCommand(authcmd.NewServer())
	root.AddCommand(labscmd.NewServer())
	root.AddCommand(reservascmd.NewServer())
	root.AddCommand(migratecmd.New())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initGlobalResource(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found - using environment variables")
	}

	v := viper.NewWithOptions(viper.ExperimentalBindStruct())
	v.AutomaticEnv()

	conf := config.Global()
	if err := v.Unmarshal(conf); err != nil {
		log.Fatal(err)
	}

	logger.Init(&logger.LogConfig{
		Path:     conf.Log.LogPath,
		LogLevel: conf.Log.LogLevel,
		ServiceEnv: logger.ServiceEnv{
			Platform: conf.Server.Platform,
			Service:  conf.Server.Service,
			Env:      conf.Server.Env,
		},
	})

	return nil
}

func cleanGlobalResource(_ *cobra.Command, _ []string) error {
	logger.Close()
	return nil
}
