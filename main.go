// Package main is the entry point for the tscribe CLI.
package main

import (
	"time"

	"github.com/samber/lo"
	"github.com/tscribe-cli/tscribe/cmd"
	"github.com/tscribe-cli/tscribe/config"
	"github.com/tscribe-cli/tscribe/constant"
	"github.com/tscribe-cli/tscribe/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	if err := log.Prune(constant.LogRetentionDays * 24 * time.Hour); err != nil {
		log.Warnf("prune logs: %s", err)
	}

	cmd.Execute()
}
