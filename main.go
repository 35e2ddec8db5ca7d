package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/nstehr/splgeo/agent"
	"github.com/nstehr/splgeo/config"
	"github.com/nstehr/splgeo/ipc"
)

const banner = `
 ___ ___ _    ___ ___ ___
/ __| _ \ |  / __| __/ _ \
\__ \  _/ |_| (_ | _| (_) |
|___/_| |____\___|___\___/

Scripted Protoss Tick Intelligence`

func main() {
	flags := pflag.NewFlagSet("splgeo", pflag.ExitOnError)
	configPath := flags.String("config", "", "policy file (default: ./splgeo.yaml or /etc/splgeo/splgeo.yaml)")
	flags.String("socket", "/tmp/splgeo.sock", "unix socket the engine bridge connects to")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.Bool("watch", false, "reload the policy file when it changes")
	_ = flags.Parse(os.Args[1:])

	loader, err := config.New(*configPath, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	slog.Info("starting splgeo", "config", loader.File(), "socket", cfg.Socket, "watch", cfg.Watch)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tuner := agent.NewTuner(cfg.Policy)
	go tuner.Start(ctx)

	if cfg.Watch {
		if loader.File() == "" {
			slog.Warn("watch requested but no config file is in use")
		} else {
			loader.Watch(func(c config.Config) { tuner.Submit(c.Policy) })
		}
	}

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(cfg.Socket); err != nil {
		slog.Error("failed to clean up socket", "path", cfg.Socket, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", cfg.Socket)
	if err != nil {
		slog.Error("failed to listen on socket", "path", cfg.Socket, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(cfg.Socket)

	slog.Info("listening on domain socket", "path", cfg.Socket)

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			go handleConn(conn, tuner)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

func handleConn(conn net.Conn, tuner *agent.Tuner) {
	c := ipc.NewConnection(conn, nil)
	a := agent.New(c, nil)

	engine, err := tuner.NewEngine(a.Session)
	if err != nil {
		slog.Error("failed to build rule engine", "session", a.Session, "error", err)
		conn.Close()
		return
	}
	defer tuner.Release(a.Session)
	a.Engine = engine

	slog.Info("new connection accepted", "session", a.Session, "rules", len(engine.RuleNames()))
	c.RegisterHandler(ipc.TypeHello, a.HandleHello)
	c.RegisterHandler(ipc.TypeGameState, a.HandleGameState)
	c.ReadLoop()
}
