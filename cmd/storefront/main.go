package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/techvault/storefront/config"
	"github.com/techvault/storefront/internal/app"
	"github.com/techvault/storefront/internal/shopapi"
	"github.com/techvault/storefront/internal/webserver"
	"go.uber.org/zap"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "", "config yaml file")
	initdb   = flag.Bool("initdb", false, "drop and recreate the database schema")
)

var version = "dev"

func main() {
	flag.Parse()
	if *h {
		flag.Usage()
		return
	}
	if *showVer {
		fmt.Println("storefront", version)
		return
	}

	cfg := config.LoadConfig(*conffile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	webserver.Init(cfg)
	shopapi.Register(application.BuildOrderService())

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		zap.S().Info("shutting down")
		if err := webserver.Shutdown(); err != nil {
			zap.S().Errorf("web server shutdown: %v", err)
		}
	}()

	if err := webserver.Listen(); err != nil {
		zap.S().Errorf("web server stopped: %v", err)
	}
}
