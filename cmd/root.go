package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mindsweep/mindsweep/director/agent"
	"github.com/mindsweep/mindsweep/director/random"
	"github.com/mindsweep/mindsweep/game"
)

var gameConfig = game.NewConfig()

var (
	directorName string
	numGames     int
	seed         int64
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "mindsweep",
	Short: "Watch a knowledge-based agent play Minesweeper",
	Long: `mindsweep plays Minesweeper by deduction: each revealed cell's
mine count becomes a logical sentence, and the agent keeps resolving and
combining sentences until it finds cells that are provably safe. It only
guesses when no safe cell can be deduced.

Play a single expert board
	mindsweep

Play 100 small boards with a fixed seed
	mindsweep -h 8 -w 8 -m 8 -g 100 --seed 42
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		wins := 0
		for i := 0; i < numGames; i++ {
			config := gameConfig
			config.Seed = seed + int64(i)
			config.Director = newDirector(directorName, config.Seed)
			if config.Director == nil {
				return fmt.Errorf("invalid director %q", directorName)
			}

			result, err := game.Run(config)
			if err != nil {
				return err
			}
			if result.State == game.Won {
				wins++
			}

			logrus.WithFields(logrus.Fields{
				"seed":  config.Seed,
				"moves": result.Moves,
				"state": result.State,
			}).Info("game finished")
		}

		logrus.WithFields(logrus.Fields{
			"games": numGames,
			"wins":  wins,
		}).Info("all games finished")
		return nil
	},
}

func newDirector(name string, seed int64) game.Director {
	// The director draws from its own source so that its guesses do not
	// disturb the board generation stream.
	rng := rand.New(rand.NewSource(seed))

	switch name {
	case "agent":
		return agent.New(rng)
	case "random":
		return random.New(rng)
	default:
		return nil
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", 30, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", 16, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", 99, "Number of mines to place in the game board")
	rootCmd.Flags().StringVar(&gameConfig.SnapshotDir, "snapshot-dir", "", "Directory to save final board snapshots to")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "agent", "Director to play with (agent or random)")
	rootCmd.Flags().IntVarP(&numGames, "games", "g", 1, "Number of games to play")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for board generation and guessing (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every move")
}
