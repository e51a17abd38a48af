package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hoop-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Hoop Runner SSH server",
	Long: `Start an SSH server. Every connection gets its own independent game;
sessions share nothing. Sound is local-only and never played for SSH
sessions.

Address, host key and idle timeout default to the server section of the
config file.

Examples:
  hooprun serve
  hooprun serve --ssh :2222
  hooprun serve --host-key ./host_key --idle-timeout 5

Players connect with:
  ssh -p 2222 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	srvCfg := appConfig.Server
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeoutMinutes = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     srvCfg.Address,
		HostKeyPath: srvCfg.HostKey,
		IdleTimeout: srvCfg.IdleTimeout(),
		GameID:      gameID,
		TickRate:    tickRate(),
		ShowHelp:    appConfig.Display.ShowHelp,
	}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}

