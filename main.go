package main

import (
	"fmt"
	"os"

	"github.com/go-i2p/dsapkey/lib/cli"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

func main() {
	if err := cli.Execute(); err != nil {
		log.WithError(err).Error("dsapkey command failed")
		fmt.Fprintln(os.Stderr, "dsapkey:", err)
		os.Exit(1)
	}
}
