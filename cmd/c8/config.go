package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

// Supported front ends.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "term"
)

// Config defines program configuration.
type Config struct {
	ROM         string // Path to the program image to load.
	Frontend    string // Front end to run: window or term.
	ScaleFactor int    // Amount by which each pixel is scaled in window mode.
	Fullscreen  bool   // Run in fullscreen?
	Hz          int    // Instructions executed per second.
	Seed        int64  // Random seed; 0 picks one from the clock.
	Debug       bool   // Enable debug logging.
	Trace       bool   // Log every executed instruction.
	Quiet       bool   // Only log errors.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	c := defaultConfig()

	flag.Usage = func() {
		fmt.Printf("%s [options] <rom file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Frontend, "frontend", c.Frontend, "Front end to use: window or term.")
	flag.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Pixel scale factor for the window.")
	flag.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "Run the window in fullscreen mode.")
	flag.IntVar(&c.Hz, "hz", c.Hz, "Number of instructions executed per second.")
	flag.Int64Var(&c.Seed, "seed", c.Seed, "Random number seed. 0 seeds from the current time.")
	flag.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging.")
	flag.BoolVar(&c.Trace, "trace", c.Trace, "Log every executed instruction. Implies -debug.")
	flag.BoolVar(&c.Quiet, "q", c.Quiet, "Only log errors.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.ROM = flag.Arg(0)
	if c.Trace {
		c.Debug = true
	}

	if err := c.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}

	return c
}

func defaultConfig() *Config {
	return &Config{
		Frontend:    FrontendWindow,
		ScaleFactor: 10,
		Hz:          700,
	}
}

// validate checks option values which the flag package can not.
func (c *Config) validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return errors.Errorf("unknown front end %q", c.Frontend)
	}

	if c.ScaleFactor < 1 {
		return errors.Errorf("invalid scale factor %d", c.ScaleFactor)
	}

	if c.Hz < 1 {
		return errors.Errorf("invalid instruction rate %d", c.Hz)
	}

	return nil
}

// createLogger builds the application logger for the configured verbosity.
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
