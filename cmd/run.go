package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/bulletin/internal/appearance"
	"github.com/papapumpkin/bulletin/internal/config"
	"github.com/papapumpkin/bulletin/internal/deck"
	"github.com/papapumpkin/bulletin/internal/history"
	"github.com/papapumpkin/bulletin/internal/telemetry"
	"github.com/papapumpkin/bulletin/internal/tui"
	"github.com/papapumpkin/bulletin/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run [deck.toml]",
	Short: "Present a deck of cards",
	Long: `Load a deck, build its pages and present the root card. The program exits
when the flow is dismissed. Without an argument the configured deck is used.

With --watch the deck file is watched for changes; every valid save replaces
the running flow with the new one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Bool("watch", false, "reload the deck when the file changes")
	runCmd.Flags().Bool("no-animation", false, "present cards without the reveal animation")
	runCmd.Flags().String("telemetry", "", "append JSONL navigation events to this file")
	runCmd.Flags().Int("width", 0, "card width in cells (default from config)")
	runCmd.Flags().Bool("once", false, "skip the deck if a previous run completed it")
	_ = viper.BindPFlag("watch", runCmd.Flags().Lookup("watch"))
	_ = viper.BindPFlag("telemetry_path", runCmd.Flags().Lookup("telemetry"))
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if w, _ := cmd.Flags().GetInt("width"); w > 0 {
		viper.Set("width", w)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if noAnim, _ := cmd.Flags().GetBool("no-animation"); noAnim {
		cfg.Animated = false
	}
	once, _ := cmd.Flags().GetBool("once")

	printer := ui.NewWriter(os.Stderr, applyColor(cfg.NoColor))

	path := cfg.Deck
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no deck given; pass a file or set deck in .bulletin.yaml")
	}

	if !isStderrTTY() {
		return errors.New("bulletin run requires a TTY (terminal)")
	}

	flow, err := loadFlow(printer, path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := history.Open(ctx, cfg.HistoryPath)
	if err != nil {
		printer.Error(fmt.Sprintf("run history unavailable: %v", err))
	} else {
		defer store.Close()
	}

	if once && store != nil {
		done, err := store.Completed(ctx, flow.Name)
		if err != nil {
			return err
		}
		if done {
			printer.Info(fmt.Sprintf("deck %q already completed; skipping", flow.Name))
			return nil
		}
	}

	var emitter *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		emitter, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return err
		}
		defer emitter.Close()
	}
	rec := telemetry.NewRecorder(emitter)
	tracker := newRunTracker(flow.Name, rec.Session(), rec)

	printer.DeckLoaded(flow.Name, len(flow.Pages), flow.Root.ID)

	host := tui.NewHost(flow.Root, tui.Options{
		Appearance:    cfg.Appearance.Merge(flow.Appearance),
		CardWidth:     cfg.Width,
		Animated:      cfg.Animated,
		Recorder:      tracker,
		QuitOnDismiss: true,
		Title:         flow.Name,
	})
	program := tui.NewProgram(host)

	if cfg.Watch {
		w, err := deck.NewWatcher(path)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		defer w.Stop()
		go forwardReloads(program, w.Changes, cfg.Appearance, rec)
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	run, ok := tracker.Run()
	if !ok {
		return nil
	}
	rec.Record(telemetry.KindRunDone, run.LastPage, map[string]any{
		"outcome":    string(run.Outcome),
		"pages_seen": run.PagesSeen,
		"duration_s": run.Duration().Round(time.Millisecond).Seconds(),
	})
	printer.RunSummary(run)
	if store != nil {
		if _, err := store.Record(ctx, run); err != nil {
			printer.Error(err.Error())
		}
	}
	return nil
}

// loadFlow loads and builds the deck at path, printing validation problems.
func loadFlow(printer *ui.Printer, path string) (*deck.Flow, error) {
	d, err := deck.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := deck.Validate(d); len(errs) > 0 {
		printer.ValidationErrors(d.SourceFile, len(d.Pages), errs)
		return nil, fmt.Errorf("%s: %w", path, deck.ErrInvalid)
	}
	return deck.Build(d)
}

// forwardReloads turns watcher results into program messages until changes
// is closed.
func forwardReloads(program *tui.Program, changes <-chan deck.Reload, base appearance.Config, rec *telemetry.Recorder) {
	for r := range changes {
		if r.Err != nil {
			program.Send(tui.MsgStatus{Text: "reload failed: " + r.Err.Error(), Error: true})
			continue
		}
		app := base.Merge(r.Flow.Appearance)
		rec.Record(telemetry.KindDeckReload, r.Flow.Root.ID, map[string]any{
			"deck":  r.Flow.Name,
			"pages": len(r.Flow.Pages),
		})
		program.Send(tui.MsgReplace{Root: r.Flow.Root, Appearance: &app})
	}
}
