package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/config"
	"github.com/tatyana-ilieva/lev-holdings/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}
	cfg.ConfigureLogging()

	myApp := &app.App{}
	if err := myApp.Initialize(ctx, cfg); err != nil {
		logrus.Fatalf("failed to initialize: %v", err)
	}
	if err := myApp.Run(ctx); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
