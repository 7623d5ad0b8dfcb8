package config

import (
	"flag"
	"os"
	"time"

	"github.com/camertanev/FraudDetect-Z/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the claim ledger (default from Config)
//	-i int      online check interval in seconds (default from Config)
//	-t uint     fraud amount threshold (default from Config)
//	-d string   destination contract identifier (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LedgerEndpointAddr, "a", cfg.LedgerEndpointAddr, "address and port to access claim ledger")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.Uint64Var(&cfg.FraudThreshold, "t", cfg.FraudThreshold, "fraud amount threshold")
	fs.StringVar(&cfg.Destination, "d", cfg.Destination, "destination contract identifier")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
