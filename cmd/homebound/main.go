// homebound is a terminal game about getting through the day at home.
//
// Usage:
//
//	homebound list              - List available maps
//	homebound play [map]        - Play a map (default: apartment)
//	homebound menu              - Start menu to pick maps interactively
//	homebound serve             - Start SSH server for remote play
//	homebound scores [map]      - Show run history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.homebound/runs.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//
// Every global flag can also be set through a HOMEBOUND_* environment
// variable; flags given on the command line win.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/games/home"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string

	// logger is built from --log-file and --log-level before any command runs.
	logger *log.Logger
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "homebound",
	Short: "Homebound - get through the day without losing your mind",
	Long: `Homebound is a terminal game set in a small home. Walk between the
furniture, work through the day's task list and resist the bad habits that
drain your happiness. Run out of happiness and the day is over.

Available commands:
  list     - Show all available maps
  play     - Play a map directly
  menu     - Interactive map picker menu
  serve    - Start SSH server for remote play
  scores   - View run history

Examples:
  homebound list
  homebound play
  homebound play studio --difficulty hard
  homebound menu
  homebound serve --ssh :2222
  homebound scores apartment`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.homebound/runs.db", "Path to run history database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup fills unset flags from the environment, opens the log and hands the
// game configuration to the home package.
func setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	applySettings(cmd, settings)

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Surface config mistakes before the alternate screen hides them.
	if _, err := config.LoadHome(flagConfig); err != nil {
		return err
	}

	logger, err = openLog(flagLogFile, flagLogLevel, cmd.Name() == "serve")
	if err != nil {
		return err
	}

	home.SetConfigPath(flagConfig)
	home.SetDifficultyPreset(preset)
	return nil
}

// applySettings copies environment settings into every flag the user did
// not set explicitly.
func applySettings(cmd *cobra.Command, s config.Settings) {
	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = s.FPS
	}
	if !flags.Changed("seed") {
		flagSeed = s.Seed
	}
	if !flags.Changed("db") {
		flagDBPath = s.DBPath
	}
	if !flags.Changed("config") {
		flagConfig = s.ConfigPath
	}
	if !flags.Changed("difficulty") {
		flagDifficulty = s.Difficulty
	}
	if !flags.Changed("log-file") {
		flagLogFile = s.LogFile
	}
	if !flags.Changed("log-level") {
		flagLogLevel = s.LogLevel
	}
}
