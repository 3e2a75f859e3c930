package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unilabs/labplatform/pkg/middleware/logger"
	"github.com/unilabs/labplatform/pkg/utils"
)

// Run serves the engine until ctx is cancelled, then drains in-flight
// requests before returning.
func Run(ctx context.Context, g *gin.Engine, port int, name string) error {
	httpServer := http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           g,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	fmt.Printf("%s server starting on http://0.0.0.0:%d\n", name, port)

	utils.SafelyGo(func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf(ctx, "start %s server err: %v", name, err)
		}
	}, func(err error) {
		logger.Errorf(ctx, "run %s server err: %+v", name, err)
	})

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shut down %s server err: %+v", name, err)
		return err
	}
	return nil
}
