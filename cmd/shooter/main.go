// shooter is a real-time arcade shooter for the terminal, in a top-down 2D
// arena and a first-person 3D arena.
//
// Usage:
//
//	shooter list              - List available modes
//	shooter play <mode>       - Play a mode
//	shooter menu              - Pick modes interactively
//	shooter serve             - Start SSH server for remote play
//	shooter scores <mode>     - Show the leaderboard for a mode
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--db <path>             - Set leaderboard path (default: ~/.arcade/scores.db)
//	--highscore-dir <path>  - Directory of per-mode high-score files (default: ~/.arcade)
//	--log-level <level>     - debug, info, warn or error
//	--log-file <path>       - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagHighScoreDir string
	flagLogLevel     string
	flagLogFile      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "TUI Shooter - arena shooters in your terminal",
	Long: `TUI Shooter is a real-time arcade shooter that runs in the terminal.

Modes:
  arena    - top-down arena: turn, thrust, shoot, collect pickups
  arena3d  - first-person flight through walled rooms

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  shooter list
  shooter play arena
  shooter play arena3d --difficulty hard
  shooter menu
  shooter serve --ssh :2222
  shooter scores arena --tui`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to leaderboard database")
	pf.StringVar(&flagHighScoreDir, "highscore-dir", "~/.arcade", "Directory for per-mode high-score files")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
