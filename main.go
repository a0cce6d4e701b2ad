package main

import (
	// Stdlib
	"fmt"
	"os"
	"os/signal"

	// Internal
	"github.com/kwokoek/git-cleaner/app/appflags"
	"github.com/kwokoek/git-cleaner/commands/prune"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

const version = "0.1.0"

func main() {
	// Initialise the application.
	cleaner := gocli.NewApp("git-cleaner")
	cleaner.UsageLine = pruneCmd.Command.UsageLine
	cleaner.Short = pruneCmd.Command.Short
	cleaner.Long = pruneCmd.Command.Long
	cleaner.Version = version
	cleaner.Action = pruneCmd.Command.Action

	// Register global flags.
	appflags.RegisterGlobalFlags(&cleaner.Flags)

	// Start processing signals.
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt)
	go catchSignals(signalCh)

	// Run the application.
	cleaner.Run(os.Args[1:])
}

func catchSignals(ch chan os.Signal) {
	<-ch
	fmt.Print(`
+-----------------------------------------------------+
| Signal received, the child processes were notified. |
| Send the signal again to exit immediately.          |
+-----------------------------------------------------+
	`)
	signal.Stop(ch)
}
