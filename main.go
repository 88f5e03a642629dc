package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/likeclem30/taxipassbackend/config"
	"github.com/likeclem30/taxipassbackend/internal/api"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	api.StartServer(cfg, logger)
}
