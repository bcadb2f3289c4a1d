package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/christopherklint97/jetlagr/internal/config"
	"github.com/christopherklint97/jetlagr/internal/library"
	"github.com/christopherklint97/jetlagr/internal/logging"
	"github.com/christopherklint97/jetlagr/internal/store"
)

const (
	tripsCollection = "saved_trips"
	lastTripKey     = "last_trip"
)

var rootCmd = &cobra.Command{
	Use:          "jetlagr",
	Short:        "Circadian jet-lag planner",
	Long:         "jetlagr turns a flight itinerary into a day-by-day plan of sleep, light, melatonin and caffeine timing that shifts your body clock to the destination.",
	SilenceUsage: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open config file in your editor",
	RunE:  runConfig,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env carries what every command needs once the config is loaded.
type env struct {
	cfg    *config.Config
	logger zerolog.Logger
	db     *store.DB
	lib    *library.Library
}

func (e *env) Close() {
	if e.db != nil {
		e.db.Close()
	}
}

func loadEnv(cmd *cobra.Command, openDB bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}

	e := &env{cfg: cfg, logger: logger}
	if !openDB {
		e.lib = library.New(store.NewMemory(), logging.Component(logger, "library"))
		return e, nil
	}

	path, err := cfg.DBPath()
	if err != nil {
		return nil, err
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	logger.Debug().Str("path", path).Msg("opened database")

	e.db = db
	e.lib = library.New(db.Collection(tripsCollection), logging.Component(logger, "library"))
	return e, nil
}

// tripID resolves the trip a command acts on: the argument when given,
// otherwise the last planned trip.
func (e *env) tripID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if e.db == nil {
		return "", fmt.Errorf("no trip id given")
	}
	id, err := e.db.GetState(lastTripKey)
	if err != nil {
		return "", fmt.Errorf("reading last trip: %w", err)
	}
	if id == "" {
		return "", fmt.Errorf("no trip id given and no trip planned yet (run 'jetlagr plan' first)")
	}
	return id, nil
}

// writeOutput writes to path, or stdout when path is empty or "-".
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if err := config.WriteDefault(configPath); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	fmt.Printf("Opening %s with %s...\n", configPath, editor)

	editorPath, err := exec.LookPath(editor)
	if err != nil {
		fmt.Printf("Could not open editor. Config file is at: %s\n", configPath)
		return nil
	}

	c := exec.Command(editorPath, configPath)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	return c.Run()
}
