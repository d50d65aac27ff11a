// jungle is a side-scrolling platformer: run, jump and shoot through the
// level while bees swarm in from the right.
//
// Usage:
//
//	jungle                   - Play the default level
//	jungle scores            - Show the stored high score
//
// Global flags:
//
//	--level <name>   - Level file (embedded name or path on disk)
//	--assets <dir>   - Directory holding images/ and audio/
//	--store <kind>   - High score store: file or sqlite
//	--scores <path>  - Score file or database path
//	--seed <value>   - RNG seed for reproducible spawns
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/milk9111/jungle/assets"
	"github.com/milk9111/jungle/assets/sound"
	"github.com/milk9111/jungle/levels"
	"github.com/milk9111/jungle/prefabs"
	"github.com/milk9111/jungle/storage"
	"github.com/milk9111/jungle/system"
)

const (
	storeFile   = "file"
	storeSQLite = "sqlite"

	defaultDBPath = "~/.jungle/scores.db"
)

var (
	flagLevel  string
	flagAssets string
	flagStore  string
	flagScores string
	flagSeed   int64
	flagDebug  bool
	flagWatch  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jungle",
	Short: "Jungle Adventure - a 2D side-scroller",
	Long: `Jungle Adventure is a side-scrolling platformer.

Controls:
  A/D or arrows   move
  W/Space/Up      jump
  S               shoot
  R               restart after dying or winning
  ESC             quit`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	RunE:              runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", levels.DefaultLevel, "Level to play (embedded name or path)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", ".", "Directory holding images/ and audio/")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeFile, "High score store: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagScores, "scores", "", "Score file or database path (default depends on --store)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and the FPS overlay")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload prefabs/tuning.yaml when it changes")

	rootCmd.AddCommand(scoresCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "jungle",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
	return nil
}

func runGame(cmd *cobra.Command, args []string) error {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}

	lvl, err := levels.Load(flagLevel)
	if err != nil {
		return err
	}

	loader := assets.NewLoader(os.DirFS(flagAssets), tuning.Scale)
	level, err := levels.Build(lvl, loader, tuning.Scale)
	if err != nil {
		return fmt.Errorf("level %s: %w", flagLevel, err)
	}
	images := loader.Images()

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	cues := sound.Load(audio.NewContext(sound.SampleRate), os.DirFS(flagAssets))
	res := &system.Resources{
		Player: images.Player,
		Bee:    images.Bee,
		Snake:  images.Snake,
		Bullet: images.Bullet,
		Fire:   images.Fire,
		Cues:   make(map[string]system.Cue, len(cues)),
	}
	for name, c := range cues {
		if name == sound.Music {
			continue
		}
		res.Cues[name] = c
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("starting", "level", lvl.Name, "seed", seed, "store", flagStore)

	world, err := system.NewWorld(system.Config{
		Tuning:    tuning,
		Resources: res,
		Level:     level,
		Store:     store,
		Rand:      rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}

	var watcher *prefabs.Watcher
	if flagWatch {
		watcher, err = prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Warn("tuning watch disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	game := NewGame(world, watcher, flagDebug)
	if music, ok := cues[sound.Music]; ok {
		music.Play()
		defer music.Stop()
	}

	ebiten.SetWindowSize(tuning.Window.Width, tuning.Window.Height)
	ebiten.SetWindowTitle("Jungle Adventure")
	ebiten.SetTPS(tuning.Framerate)
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(game)
}

// openStore opens the high score store selected by --store. The returned
// close func is always safe to call.
func openStore() (system.HighScoreStore, func() error, error) {
	switch flagStore {
	case storeFile:
		path := flagScores
		if path == "" {
			path = storage.DefaultScoreFile
		}
		return storage.NewFileStore(path), func() error { return nil }, nil
	case storeSQLite:
		path := flagScores
		if path == "" {
			path = defaultDBPath
		}
		db, err := storage.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q (want %s or %s)", flagStore, storeFile, storeSQLite)
}
