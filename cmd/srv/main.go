package main

import (
	"context"
	"os"

	"github.com/adventboard/backend/pkg/logger"
)

var server = &srv{ctx: context.Background()}

func main() {
	server.loadApp()
	if err := server.app.Run(os.Args); err != nil {
		logger.NewLogger("error").Errorf("%v", err)
		os.Exit(1)
	}
}
