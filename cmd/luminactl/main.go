package main

import (
	"os"

	"github.com/grishaff/LuminaShare/cmd/luminactl/cli"
	"github.com/grishaff/LuminaShare/internal/logger"
)

func main() {
	if err := cli.Setup(); err != nil {
		logger.Error("%v", err)
		logger.Sync()
		os.Exit(1)
	}
}
