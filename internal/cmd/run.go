package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/barbershop/internal/config"
	"github.com/Iron-Ham/barbershop/internal/dispatcher"
	"github.com/Iron-Ham/barbershop/internal/event"
	"github.com/Iron-Ham/barbershop/internal/logging"
	"github.com/Iron-Ham/barbershop/internal/report"
	"github.com/Iron-Ham/barbershop/internal/shop"
	"github.com/Iron-Ham/barbershop/internal/tui"
	"github.com/Iron-Ham/barbershop/internal/tui/styles"
)

var (
	runDuration  time.Duration
	runDashboard bool
	runPrompt    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the shop",
	Long: `Open the shop and narrate every arrival, haircut and departure until
interrupted (Ctrl-C), the --duration elapses, or --clients have arrived and
been served.

The arrival window (arrival.min_ms, arrival.max_ms) is reloaded while the
shop is open whenever the config file changes.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("barbers", 3, "number of barbers")
	runCmd.Flags().Int("chairs", 5, "number of waiting-room chairs")
	runCmd.Flags().Int("haircut", 2000, "haircut time in milliseconds")
	runCmd.Flags().Int("clients", 0, "stop after this many clients have arrived (0 = no limit)")
	runCmd.Flags().Uint64("seed", 0, "seed for arrival intervals (0 = random)")
	runCmd.Flags().DurationVar(&runDuration, "duration", 0, "close the shop after this long (0 = until interrupted)")
	runCmd.Flags().BoolVar(&runDashboard, "dashboard", false, "show a live dashboard instead of the event trace")
	runCmd.Flags().BoolVar(&runPrompt, "prompt", false, "ask for barbers, chairs and haircut time on stdin")

	_ = viper.BindPFlag("shop.barbers", runCmd.Flags().Lookup("barbers"))
	_ = viper.BindPFlag("shop.chairs", runCmd.Flags().Lookup("chairs"))
	_ = viper.BindPFlag("shop.haircut_ms", runCmd.Flags().Lookup("haircut"))
	_ = viper.BindPFlag("arrival.max_clients", runCmd.Flags().Lookup("clients"))
	_ = viper.BindPFlag("arrival.seed", runCmd.Flags().Lookup("seed"))
}

func runRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if runPrompt {
		if err := promptShop(cmd.InOrStdin(), out, viper.GetViper()); err != nil {
			return err
		}
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	dashboard := runDashboard && isTerminal(out)
	if runDashboard && !dashboard {
		fmt.Fprintln(cmd.ErrOrStderr(), "Output is not a terminal; showing the event trace instead of the dashboard.")
	}

	runID := uuid.NewString()
	logger, err := newRunLogger(cfg, runID, dashboard)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	bus := event.NewBus(logger)
	tally := report.NewTally(runID)
	tally.Attach(bus)
	if !dashboard {
		report.NewNarrator(out, styles.ThemeName(cfg.TUI.Theme)).Attach(bus)
	}

	minGap, maxGap := cfg.Arrival.Window()
	s, err := shop.New(shop.Options{
		Barbers:    cfg.Shop.Barbers,
		Chairs:     cfg.Shop.Chairs,
		Haircut:    cfg.Shop.HaircutTime(),
		MinGap:     minGap,
		MaxGap:     maxGap,
		MaxClients: cfg.Arrival.MaxClients,
		Seed:       cfg.Arrival.Seed,
		Events:     bus,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if runDuration > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, runDuration)
		defer cancelTimeout()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchArrivalWindow(s.Dispatcher(), logger)

	if dashboard {
		err = runWithDashboard(ctx, cancel, s, tally, cfg)
	} else {
		err = s.Run(ctx)
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, tally.Summary().String())
	return err
}

// newRunLogger builds the run's logger. Logs bound for stderr are dropped
// while the dashboard owns the terminal.
func newRunLogger(cfg *config.Config, runID string, dashboard bool) (*logging.Logger, error) {
	if !cfg.Logging.Enabled || (dashboard && cfg.Logging.Dir == "") {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLoggerWithRotation(cfg.Logging.Dir, cfg.Logging.Level, cfg.Logging.Rotation())
	if err != nil {
		return nil, err
	}
	return logger.WithRun(runID), nil
}

func runWithDashboard(ctx context.Context, cancel context.CancelFunc, s *shop.Shop, tally *report.Tally, cfg *config.Config) error {
	app := tui.New(tui.Options{
		Room:    s.Room(),
		Tally:   tally,
		Barbers: cfg.Shop.Barbers,
		Refresh: cfg.TUI.RefreshInterval(),
		Theme:   styles.ThemeName(cfg.TUI.Theme),
		Cancel:  cancel,
	})

	var wg conc.WaitGroup
	var runErr error
	wg.Go(func() {
		runErr = s.Run(ctx)
		app.Done()
	})

	uiErr := app.Run()
	cancel()
	wg.Wait()
	return errors.Join(runErr, uiErr)
}

// watchArrivalWindow pushes arrival window changes from the config file into
// the running dispatcher.
func watchArrivalWindow(d *dispatcher.Dispatcher, logger *logging.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		reloadArrivalWindow(viper.GetViper(), d, logger, e)
	})
	viper.WatchConfig()
}

func reloadArrivalWindow(v *viper.Viper, d *dispatcher.Dispatcher, logger *logging.Logger, e fsnotify.Event) {
	cfg, err := config.Load(v)
	if err != nil {
		logger.Warn("ignoring invalid config change", "file", e.Name, "error", err.Error())
		return
	}
	minGap, maxGap := cfg.Arrival.Window()
	if err := d.SetArrivalWindow(minGap, maxGap); err != nil {
		logger.Warn("ignoring invalid arrival window", "file", e.Name, "error", err.Error())
		return
	}
	logger.Info("arrival window reloaded",
		"file", e.Name,
		"min_ms", cfg.Arrival.MinMs,
		"max_ms", cfg.Arrival.MaxMs,
	)
}

// promptShop asks for the shop's dimensions, one per line. An empty answer
// keeps the current value and end of input keeps the rest.
func promptShop(in io.Reader, out io.Writer, v *viper.Viper) error {
	questions := []struct {
		key   string
		label string
	}{
		{"shop.barbers", "Number of barbers"},
		{"shop.chairs", "Number of chairs"},
		{"shop.haircut_ms", "Haircut time (ms)"},
	}

	scanner := bufio.NewScanner(in)
	for _, q := range questions {
		fmt.Fprintf(out, "%s [%d]: ", q.label, v.GetInt(q.key))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", q.key)
		}
		v.Set(q.key, n)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
