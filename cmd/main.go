package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/umtaldejr/money-tracker-api/internal/api/http/context"
	"github.com/umtaldejr/money-tracker-api/internal/api/http/handler"
	"github.com/umtaldejr/money-tracker-api/internal/api/http/router"
	"github.com/umtaldejr/money-tracker-api/internal/config"
	"github.com/umtaldejr/money-tracker-api/internal/logger"
	"github.com/umtaldejr/money-tracker-api/internal/model"
	"github.com/umtaldejr/money-tracker-api/internal/password"
	"github.com/umtaldejr/money-tracker-api/internal/repository/memory"
	"github.com/umtaldejr/money-tracker-api/internal/server"
	"github.com/umtaldejr/money-tracker-api/internal/service"
	"github.com/umtaldejr/money-tracker-api/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	userRepo := memory.NewUserRepository()
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	codec := password.NewCodec()
	ctxMgr := httpctx.NewManager()

	userService := service.NewUser(userRepo, codec, tokenManager, logger)
	metaHandler := handler.NewMeta(buildVersion, cfg.Environment)

	r := router.New(userService, tokenManager, userRepo, ctxMgr, metaHandler, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
