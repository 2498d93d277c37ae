// Package main is the entry point for the keychord demo dispatcher.
//
// It loads chord bindings from a Lua script and/or a JSON bindings file,
// opens a terminal, and shows chords matching live: pending keys on the
// status line, matched actions above it.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/keychord/chord"
	"github.com/dshills/keychord/config"
	"github.com/dshills/keychord/dispatch"
	"github.com/dshills/keychord/key"
	"github.com/dshills/keychord/script"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("keychord %s\n", version)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	applyFlagOverrides(cfg, opts)

	engine := script.NewEngine(script.WithErrorHandler(func(label string, err error) {
		fmt.Fprintf(os.Stderr, "action %s: %v\n", label, err)
	}))
	defer engine.Close()

	table, handlerOpts, err := buildTable(cfg, engine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	handler := dispatch.NewHandler(table, handlerOpts...)
	defer handler.Close()

	ui, err := newUI(handler, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		return 1
	}
	defer ui.close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		ui.quit()
	}()

	ui.run()

	snap := handler.Metrics()
	fmt.Printf("keys %d  matches %d  rejected %d  timeouts %d\n",
		snap.Keys, snap.Matches, snap.Rejected, snap.Timeouts)
	return 0
}

// options holds the parsed command line.
type options struct {
	configPath   string
	bindingsPath string
	scriptPath   string
	leader       string
	timeoutMS    int
	showVersion  bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to keychord.toml")
	flag.StringVar(&opts.bindingsPath, "bindings", "", "Path to a JSON bindings file")
	flag.StringVar(&opts.scriptPath, "script", "", "Path to a Lua bindings script")
	flag.StringVar(&opts.leader, "leader", "", "Leader key spec, e.g. <C-t>")
	flag.IntVar(&opts.timeoutMS, "timeout", 0, "Chord idle timeout in milliseconds")
	flag.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flag.Parse()

	return opts
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(cfg *config.Config, opts options) {
	if opts.bindingsPath != "" {
		cfg.Bindings = opts.bindingsPath
	}
	if opts.scriptPath != "" {
		cfg.Script = opts.scriptPath
	}
	if opts.leader != "" {
		cfg.Leader = opts.leader
	}
	if opts.timeoutMS > 0 {
		cfg.TimeoutMS = opts.timeoutMS
	}
}

// buildTable assembles the chord table from the Lua script, the JSON
// bindings file, or the built-in demo bindings when neither exists.
func buildTable(cfg *config.Config, engine *script.Engine) (*chord.Table, []dispatch.Option, error) {
	var bindings []chord.Binding
	var handlerOpts []dispatch.Option

	scriptPath := cfg.Script
	if scriptPath == "" {
		if _, err := os.Stat(config.DefaultScriptPath()); err == nil {
			scriptPath = config.DefaultScriptPath()
		}
	}
	if scriptPath != "" {
		if err := engine.LoadFile(scriptPath); err != nil {
			return nil, nil, err
		}
		bindings = append(bindings, engine.Bindings()...)
	}

	bindingsPath := cfg.Bindings
	if bindingsPath == "" {
		if _, err := os.Stat(config.DefaultBindingsPath()); err == nil {
			bindingsPath = config.DefaultBindingsPath()
		}
	}
	if bindingsPath != "" {
		cf, err := config.LoadChordFile(bindingsPath)
		if err != nil {
			return nil, nil, err
		}
		table, err := cf.Table(engine.Resolve, tableOpts(cfg)...)
		if err != nil {
			return nil, nil, err
		}
		bindings = append(bindings, table.Bindings()...)
		handlerOpts, err = cf.HandlerOptions()
		if err != nil {
			return nil, nil, err
		}
	}

	if len(bindings) == 0 {
		bindings = demoBindings()
	}

	table, err := chord.NewTable(bindings, tableOpts(cfg)...)
	if err != nil {
		return nil, nil, err
	}

	// Config file and flags override the bindings file's settings.
	if cfg.Leader != "" {
		leader, err := key.Parse(cfg.Leader)
		if err != nil {
			return nil, nil, fmt.Errorf("leader: %w", err)
		}
		handlerOpts = append(handlerOpts, dispatch.WithLeader(leader))
	}
	if cfg.TimeoutMS > 0 {
		handlerOpts = append(handlerOpts,
			dispatch.WithChordTimeout(time.Duration(cfg.TimeoutMS)*time.Millisecond))
	}

	return table, handlerOpts, nil
}

func tableOpts(cfg *config.Config) []chord.TableOption {
	if cfg.AllowShadowing {
		return []chord.TableOption{chord.AllowShadowing()}
	}
	return nil
}

// demoBindings gives the demo something to match when no user bindings
// exist. The actions do nothing; the UI reports matches through its
// post-key hook.
func demoBindings() []chord.Binding {
	nop := func() {}
	return []chord.Binding{
		chord.Bind("i k", nop).WithName("demo.one").WithDescription("two-key chord"),
		chord.Bind("i w", nop).WithName("demo.two").WithDescription("shared prefix"),
		chord.Bind("j j", nop).WithName("demo.three").WithDescription("double tap"),
		chord.Bind("s a <S-t>", nop).WithName("demo.four").WithDescription("with a modifier"),
		chord.Bind("<C-x><C-s>", nop).WithName("demo.five").WithDescription("control keys"),
	}
}
