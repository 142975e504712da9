package main

import (
	"context"
	"time"

	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/config"
	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/app"
	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	shopease := app.New(sigCtx, cfg)

	shopease.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	shopease.Close(ctx)
}
