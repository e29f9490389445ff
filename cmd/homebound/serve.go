package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homebound/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the homebound SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a map picker menu.
Runs are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.homebound/host_key

Examples:
  homebound serve                           # Listen on :23234 with auto-generated key
  homebound serve --ssh :2222               # Listen on port 2222
  homebound serve --host-key ./my_host_key  # Use specific host key
  homebound serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Register every map file under this directory")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if _, err := registerExtraMaps(); err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting homebound SSH server on %s\n", cfg.Address)
	fmt.Fprintf(out, "Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// port extracts the port from a host:port address.
func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}
