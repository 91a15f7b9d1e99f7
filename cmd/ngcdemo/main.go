// Command ngcdemo wires ngcconfig, paramstore, the checker, and the
// engine together against a small fixed program, the way the teacher's
// main.go wires config, the parser/loader, and the vm together — minus
// the parser, which spec.md places out of scope for this core (§1
// "Out of scope"): ngcdemo builds its Blocks directly with the
// block.Builder rather than reading a .ngc file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/checker"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/engine"
	"github.com/ikle/enigma/monitor"
	"github.com/ikle/enigma/ngcconfig"
	"github.com/ikle/enigma/paramstore"
	"github.com/ikle/enigma/state"
	"github.com/ikle/enigma/stepper"
)

func main() {
	var (
		configPath  = flag.String("config", "", "config file path (default: platform config dir)")
		monitorSrv  = flag.Bool("monitor", false, "serve the device trace over HTTP/websocket instead of printing it")
		monitorAddr = flag.String("monitor-addr", "", "listen address for -monitor (default: config value)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ngcdemo: %v\n", err)
		os.Exit(1)
	}

	s := state.New()
	if err := paramstore.Load(cfg.Interpreter.ParamFile, s); err != nil {
		fmt.Fprintf(os.Stderr, "ngcdemo: %v\n", err)
		os.Exit(1)
	}

	session := &stepper.Session{
		Blocks:      demoProgram(),
		State:       s,
		Device:      &device.Recorder{},
		Breakpoints: stepper.NewBreakpointManager(),
	}

	if *monitorSrv {
		runMonitor(session, cfg, *monitorAddr)
		return
	}

	runToCompletion(session)
	printTrace(session.Device)

	if err := paramstore.Save(cfg.Interpreter.ParamFile, s); err != nil {
		fmt.Fprintf(os.Stderr, "ngcdemo: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*ngcconfig.Config, error) {
	if path == "" {
		return ngcconfig.Load()
	}
	return ngcconfig.LoadFrom(path)
}

// demoProgram builds the spec.md §8 worked example plus a plain linear
// move and a program end, using block.Builder directly (no parser in
// this repo's scope).
func demoProgram() []*block.Block {
	return []*block.Block{
		block.New(block.Position{Line: 1}).
			Code(code.G20).
			Code(code.G90).
			Code(code.G00).
			Set(code.X, 1).
			Set(code.F, 50).
			Set(code.S, 200).
			Code(code.M03).
			Code(code.M08).
			Build(),

		block.New(block.Position{Line: 2}).
			Code(code.G01).
			Set(code.X, 2).
			Set(code.Y, 1).
			Build(),

		block.New(block.Position{Line: 3}).
			Code(code.M02).
			Build(),
	}
}

// runToCompletion checks and executes every block, stopping at the first
// fatal diagnostic (printed to stderr) just as a real program abort
// would.
func runToCompletion(session *stepper.Session) {
	for !session.Halted {
		b := session.Current()
		if b == nil {
			break
		}

		if fatal, warnings := checker.Check(b, session.State); fatal != nil {
			fmt.Fprintf(os.Stderr, "ngcdemo: line %d: %v\n", b.Pos.Line, fatal)
			os.Exit(1)
		} else {
			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "ngcdemo: line %d: warning: %v\n", b.Pos.Line, w)
			}
		}

		if fatal := engine.Exec(b, session.State, session.Device); fatal != nil {
			fmt.Fprintf(os.Stderr, "ngcdemo: line %d: %v\n", b.Pos.Line, fatal)
			os.Exit(1)
		}

		session.Index++
		if session.Index >= len(session.Blocks) {
			session.Halted = true
		}
	}
}

func printTrace(dev *device.Recorder) {
	for i, c := range dev.Calls {
		fmt.Printf("%3d  %-8s %s\n", i, c.Op, c.Args)
	}
}

// runMonitor drives the demo program block by block, publishing each
// step to a monitor.Hub served over HTTP/websocket, until interrupted.
func runMonitor(session *stepper.Session, cfg *ngcconfig.Config, addr string) {
	if addr == "" {
		addr = cfg.Monitor.ListenAddr
	}

	hub := monitor.NewHub(session)
	srv := monitor.NewServer(addr, hub)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		for !session.Halted {
			_ = session.Step()
			hub.Publish()
			time.Sleep(200 * time.Millisecond)
		}
	}()

	go func() {
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
		fmt.Fprintf(os.Stderr, "ngcdemo: monitor server: %v\n", err)
		os.Exit(1)
	}
}
