package handlers

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/evalops/scorebench/cmd/scorebench/config"
	"github.com/evalops/scorebench/cmd/scorebench/utils"
	"github.com/evalops/scorebench/internal/logging"
	"github.com/evalops/scorebench/internal/server"
)

// HandleServe runs the local scoring endpoint until interrupted. The server
// speaks the same CSV-in/JSON-out contract the evaluate command drives, so a
// locally served model can stand in for a managed endpoint.
func HandleServe(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := config.ValidateServeFlags(); err != nil {
		return err
	}

	model, err := server.LoadModel(config.Serve.ModelPath)
	if err != nil {
		return err
	}
	logging.Info("Loaded linear model with %d weights from %s",
		len(model.Weights), config.Serve.ModelPath)

	srv := server.NewServer(&server.Config{
		BindAddr: config.Serve.BindAddr,
		BindPort: config.Serve.BindPort,
		Model:    model,
	})

	if err := srv.Start(); err != nil {
		return err
	}

	// Block until interrupted, then drain in-flight requests
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
