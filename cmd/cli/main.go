package main

import (
	"context"
	"log"
	"os"

	"github.com/camertanev/FraudDetect-Z/internal/buildinfo"
	"github.com/camertanev/FraudDetect-Z/internal/client/cli"
	"github.com/camertanev/FraudDetect-Z/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
