package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/nickromney/looppager/internal/config"
	"github.com/nickromney/looppager/internal/deck"
	"github.com/nickromney/looppager/internal/logging"
	"github.com/nickromney/looppager/internal/pager"
	"github.com/nickromney/looppager/internal/tui"
	"github.com/spf13/cobra"
)

type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// RunTUI runs the interactive pager and reports the selection, if any.
type RunTUI func(opts tui.Options) (selected int, picked bool, err error)

type rootFlags struct {
	start     int
	vertical  bool
	count     int
	pick      bool
	watch     bool
	mouse     bool
	logFile   string
	logLevel  string
	logFormat string
}

// NewRootCmd creates the cobra root command with all subcommands.
// runTUI is called when no subcommand is given.
func NewRootCmd(runTUI RunTUI, buildInfo BuildInfo) *cobra.Command {
	var (
		flags   rootFlags
		noColor bool
		ascii   bool
		quiet   bool
	)

	root := &cobra.Command{
		Use:   "looppager [PATH]",
		Short: "Endlessly looping carousel pager for the terminal",
		Long: "looppager shows a deck of panels as a circular carousel: scrolling past the last panel lands on the first.\n" +
			"PATH is a deck file (cards split by lines of ---) or a directory (one card per file). Without PATH a numbered demo deck is shown.",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setOutputOptions(nil, nil, outputOptions{
				color:   !noColor && isTerminalFn(os.Stdout),
				unicode: !ascii,
				quiet:   quiet,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if runTUI == nil {
				return cmd.Help()
			}
			if !isInteractiveTTY() {
				_ = cmd.Help()
				return &ExitError{Code: 2, Silent: true}
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runRoot(cmd, runTUI, path, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&noColor, "no-color", false, "Disable coloured status output")
	pf.BoolVar(&ascii, "ascii", false, "Use ASCII status glyphs")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress status output")

	f := root.Flags()
	f.IntVarP(&flags.start, "start", "s", 0, "Start on this panel index")
	f.BoolVar(&flags.vertical, "vertical", false, "Scroll vertically")
	f.IntVarP(&flags.count, "count", "n", 5, "Number of panels in the demo deck (without PATH)")
	f.BoolVar(&flags.pick, "pick", false, "Quit on selection and print the selected index")
	f.BoolVarP(&flags.watch, "watch", "w", false, "Reload the deck when PATH changes")
	f.BoolVar(&flags.mouse, "mouse", true, "Enable mouse wheel and click")
	f.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: "+strings.Join(logging.AllLevels, ", "))
	f.StringVar(&flags.logFormat, "log-format", "", "Log format: "+strings.Join(logging.AllFormats, ", "))

	root.AddCommand(
		newListCmd(),
		newWindowCmd(),
		newThemeCmd(),
		newConfigCmd(),
		newVersionCmd(buildInfo),
	)

	return root
}

func runRoot(cmd *cobra.Command, runTUI RunTUI, path string, flags rootFlags) error {
	cfg := loadConfig()
	fl := cmd.Flags()
	if fl.Changed("start") {
		cfg.StartIndex = flags.start
	}
	if fl.Changed("vertical") {
		cfg.Orientation = pager.Horizontal.String()
		if flags.vertical {
			cfg.Orientation = pager.Vertical.String()
		}
	}
	if fl.Changed("watch") {
		cfg.Watch = flags.watch
	}
	if fl.Changed("mouse") {
		cfg.Mouse = flags.mouse
	}
	if fl.Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if fl.Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}

	orientation, err := pager.ParseOrientation(cfg.Orientation)
	if err != nil {
		return usageError(err.Error())
	}
	if path == "-" {
		return usageError("the interactive pager cannot read a deck from stdin; use `looppager list -`")
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return usageError(err.Error())
	}
	defer closeLog()

	d, err := loadDeck(cmd, path, flags.count)
	if err != nil {
		return err
	}
	if n := d.NumberOfPanels(); n > 0 && (cfg.StartIndex < 0 || cfg.StartIndex >= n) {
		return usageError(fmt.Sprintf("--start %d is out of range for %d panels", cfg.StartIndex, n))
	}

	opts := tui.Options{
		Deck:        d,
		Orientation: orientation,
		Start:       max(0, cfg.StartIndex),
		Pick:        flags.pick,
		Config:      cfg,
		Logger:      logger,
	}

	if cfg.Watch && path != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		events, err := deck.Watch(ctx, path)
		if err != nil {
			return err
		}
		opts.Events = events
	}

	logger.Info("starting pager", "deck", d.Name, "panels", d.NumberOfPanels(), "orientation", orientation.String())
	idx, picked, err := runTUI(opts)
	if err != nil {
		return err
	}
	if !flags.pick {
		return nil
	}
	if !picked {
		return &ExitError{Code: 1, Silent: true}
	}
	fmt.Fprintln(cmd.OutOrStdout(), idx)
	return nil
}

// loadConfig falls back to defaults when config.yml is broken.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		warn("config: " + err.Error())
	}
	return cfg
}

func newListCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "list [PATH]",
		Short: "Print the panels of a deck as index<TAB>title",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd, argOrEmpty(args), count)
			if err != nil {
				return err
			}
			if d.NumberOfPanels() == 0 {
				warn("deck has no panels")
				return nil
			}
			for i, title := range d.Titles() {
				fmt.Fprintf(outStdout, "%d\t%s\n", i, title)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of panels in the demo deck (without PATH)")
	return cmd
}

func newWindowCmd() *cobra.Command {
	var (
		count    int
		index    int
		steps    []string
		vertical bool
	)
	cmd := &cobra.Command{
		Use:   "window [PATH]",
		Short: "Print the three mounted panels around an index",
		Long: "window drives the pager controller against a headless viewport and prints the previous, middle and next panels.\n" +
			"Each --step settles the viewport on the next or previous page, as a scroll would.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd, argOrEmpty(args), count)
			if err != nil {
				return err
			}

			o := pager.Horizontal
			if vertical {
				o = pager.Vertical
			}
			vp := newHeadlessViewport()
			ctrl := pager.NewController(vp, o)
			if err := ctrl.Attach(d); err != nil {
				return err
			}
			if err := ctrl.SetMiddle(index); err != nil {
				if errors.Is(err, pager.ErrEmptyCollection) {
					return errors.New("deck has no panels")
				}
				return usageError(err.Error())
			}

			for _, s := range steps {
				off, err := stepOffset(vp, o, s)
				if err != nil {
					return err
				}
				step("settle " + s)
				if err := ctrl.OnViewportPositionChanged(off); err != nil {
					return err
				}
			}

			w, _ := ctrl.Window()
			kv("previous", describePanel(ctrl, w.Previous))
			kv("middle", describePanel(ctrl, w.Middle))
			kv("next", describePanel(ctrl, w.Next))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of panels in the demo deck (without PATH)")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "Middle panel index")
	cmd.Flags().StringSliceVar(&steps, "step", nil, "Settle on the prev or next page (repeatable)")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "Use the vertical axis")
	return cmd
}

func stepOffset(vp *headlessViewport, o pager.Orientation, s string) (pager.Point, error) {
	extent := vp.page.Width
	if o == pager.Vertical {
		extent = vp.page.Height
	}
	var d int
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next":
		d = 2 * extent
	case "prev", "previous":
		d = 0
	default:
		return pager.Point{}, usageError(fmt.Sprintf("--step must be prev or next, got %q", s))
	}
	if o == pager.Vertical {
		return pager.Point{Y: d}, nil
	}
	return pager.Point{X: d}, nil
}

func describePanel(ctrl *pager.Controller, p *pager.Panel) string {
	title := ""
	if c, ok := p.Content().(*deck.Card); ok {
		title = c.Title
	}
	s := strconv.Itoa(ctrl.Index(p)) + "  " + title
	if p.IsCopy() {
		s += "  (copy)"
	}
	return s
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [NAME]",
		Short: "List themes, or save NAME as the default theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := tui.ThemeNames()
			if len(args) == 0 {
				current := tui.ThemeByName(loadConfig().Theme).Name
				for _, n := range names {
					mark := " "
					if n == current {
						mark = sym("●", "*")
					}
					fmt.Fprintf(outStdout, "%s %s\n", mark, n)
				}
				return nil
			}

			name := strings.TrimSpace(args[0])
			if !slices.Contains(names, name) {
				return usageError(fmt.Sprintf("unknown theme %q (one of: %s)", name, strings.Join(names, ", ")))
			}
			step("Saving theme " + name + "...")
			path, err := config.SaveTheme(name)
			if err != nil {
				return err
			}
			success("Saved theme to " + path)
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			cfg := loadConfig()
			info("Config file: " + path)
			kv("orientation", cfg.Orientation)
			kv("start_index", strconv.Itoa(cfg.StartIndex))
			kv("mouse", strconv.FormatBool(cfg.Mouse))
			kv("watch", strconv.FormatBool(cfg.Watch))
			kv("scroll_frames", strconv.Itoa(cfg.ScrollFrames))
			kv("frame_interval_ms", strconv.Itoa(cfg.FrameIntervalMS))
			kv("theme", tui.ThemeByName(cfg.Theme).Name)
			kv("log_level", cfg.LogLevel)
			kv("log_format", cfg.LogFormat)
			kv("log_file", cfg.LogFile)
			kv("keys", fmt.Sprintf("next=%s prev=%s select=%s copy=%s jump=%s",
				cfg.Keys.Next, cfg.Keys.Prev, cfg.Keys.Select, cfg.Keys.Copy, cfg.Keys.Jump))
			return nil
		},
	}
}

func newVersionCmd(buildInfo BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(outStdout, "looppager %s\n", buildInfo.Version)
			fmt.Fprintf(outStdout, "build_time: %s\n", buildInfo.BuildTime)
			fmt.Fprintf(outStdout, "git_commit: %s\n", buildInfo.GitCommit)
		},
	}
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
