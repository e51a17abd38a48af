package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hoop-runner/internal/audio"
	"github.com/vovakirdan/hoop-runner/internal/core"
	"github.com/vovakirdan/hoop-runner/internal/platform/tui"
	"github.com/vovakirdan/hoop-runner/internal/registry"
)

var (
	flagSound   bool
	flagNoHelp  bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Enter  - Start
  Space/Up/W   - Jump (press again in the air to double jump)
  R            - Restart after game over
  ?            - Toggle full help
  Q/Esc/Ctrl+C - Quit

The terminal owns stdout while playing, so logs are discarded unless
--log-file is given.

Examples:
  hooprun play
  hooprun play --sound
  hooprun play --seed 42 --log-file hooprun.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound cues (overrides audio.enabled)")
	cmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the key help bar")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	sessionLog, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	player := audio.Open(flagSound || appConfig.Audio.Enabled, appConfig.Audio.Volume, sessionLog)
	defer player.Close()

	return tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tickRate(),
			Seed:     flagSeed,
		},
		ShowHelp: appConfig.Display.ShowHelp && !flagNoHelp,
		Audio:    player,
		Logger:   sessionLog,
	})
}

// playLogger points the logger away from the terminal: to --log-file when
// given, otherwise nowhere.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
		return logger.WithPrefix("play"), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger.WithPrefix("play"), func() { f.Close() }, nil
}
