package config

import (
	"flag"
	"os"
	"time"

	"github.com/luga-ai/luga-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   root URL of the backend API (default from Config)
//	-s string   path of the local credential store (default from Config)
//	-p int      job status poll interval in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "root URL of the backend API")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local credential store")
	pollInterval := fs.Int("p", int(cfg.PollInterval.Seconds()), "job status poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
}
