// Package vecsh runs scripts of vector operations against a bounded vector of
// ints. It is used to try out assertion handlers and build tags on the host.
package vecsh

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/clktmr/estd/debug"
	"github.com/clktmr/estd/debug/zaphandler"
	"github.com/clktmr/estd/vector"
)

const usageString = `Bounded vector shell.

Usage:

	%s [flags] [script]

Reads commands from script or stdin, one per line:

	push v, pop, insert p v, insertn p n v, emplace p v, erase p [q],
	assign n v, clear, sort, reverse, at i, front, back, print, len

Handlers: abort, panic, log, count

Flags:
`

var (
	flags    = flag.NewFlagSet("vecsh", flag.ExitOnError)
	config   = flags.String("config", "", "YAML `file` describing the vector")
	capacity = flags.Int("cap", 10, "vector capacity")
	handler  = flags.String("handler", "abort", "assertion handler")
)

// Returns the handler to install and an optional func run after the script.
// A nil handler runs the script with debug.Catch.
var handlers = map[string]func(out, logw io.Writer) (debug.HandlerFunc, func()){
	"abort": func(out, logw io.Writer) (debug.HandlerFunc, func()) {
		return debug.AbortHandler, nil
	},
	"panic": func(out, logw io.Writer) (debug.HandlerFunc, func()) {
		return nil, nil
	},
	"log": func(out, logw io.Writer) (debug.HandlerFunc, func()) {
		logger := newLogger(logw)
		return zaphandler.New(logger), func() { logger.Sync() }
	},
	"count": func(out, logw io.Writer) (debug.HandlerFunc, func()) {
		c := new(debug.Counter)
		return c.Handle, func() { fmt.Fprintln(out, "violations:", c.Count) }
	},
}

func newLogger(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "vecsh")
	flags.PrintDefaults()
}

// Run executes script against a vector built from cfg. Command output goes to
// out, handler logs to logw.
func Run(cfg Config, script io.Reader, out, logw io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h, done := handlers[cfg.Handler](out, logw)
	if done != nil {
		defer done()
	}

	var err error
	run := func() {
		v := vector.New[int](cfg.Capacity)
		v.Assign(cfg.Fill.Count, cfg.Fill.Value)
		err = NewShell(v, out).Run(script)
	}
	if h == nil {
		if f := debug.Catch(run); f != nil {
			return f
		}
		return err
	}
	debug.WithHandler(h, run)
	return err
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() > 1 {
		flags.Usage()
		os.Exit(1)
	}

	cfg := defaultConfig()
	if *config != "" {
		var err error
		if cfg, err = LoadConfig(*config); err != nil {
			log.Fatalln(err)
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cap":
			cfg.Capacity = *capacity
		case "handler":
			cfg.Handler = *handler
		}
	})

	script := io.Reader(os.Stdin)
	if flags.NArg() == 1 {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		script = f
	}

	if err := Run(cfg, script, os.Stdout, os.Stderr); err != nil {
		log.Fatalln(err)
	}
}
