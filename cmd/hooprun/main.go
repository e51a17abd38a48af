// hooprun is a side-scrolling basketball runner for the terminal.
//
// Usage:
//
//	hooprun                  - Play (same as hooprun play)
//	hooprun play             - Play in this terminal
//	hooprun serve            - Start an SSH server, one game per session
//	hooprun simulate         - Run headless autopilot games and print results
//	hooprun list             - List registered games
//
// Global flags:
//
//	--fps <rate>         - Tick rate (default: from config, 60)
//	--seed <value>       - RNG seed for reproducible runs
//	--config <path>      - Config file (default search: ~/.hooprun, ./configs)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hoop-runner/internal/config"
	"github.com/vovakirdan/hoop-runner/internal/games/hoops"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hooprun",
	Short: "Hoop Runner - a basketball side-scroller in your terminal",
	Long: `Hoop Runner is an endless side-scroller. Jump and double jump to collect
basketballs, stomp cones, bottles and racks, dodge the grabbing hands and
flying hazards, and grab stars for invincibility. Every level speeds the
court up.

Examples:
  hooprun
  hooprun play --sound
  hooprun serve --ssh :2222
  hooprun simulate --runs 20 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
}

// setup loads the config and builds the logger shared by all commands.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg

	level := cfg.LogLevel()
	if flagLogLevel != "" {
		level, err = log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "hooprun",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

// tickRate returns --fps when set, else the configured rate.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return appConfig.Display.TickRate
}

// gameID is the game every frontend runs.
const gameID = hoops.GameID
