package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kk-code-lab/parafold/internal/app"
	"github.com/kk-code-lab/parafold/internal/document"
	"github.com/kk-code-lab/parafold/internal/logging"
	renderui "github.com/kk-code-lab/parafold/internal/ui/render"
	"github.com/kk-code-lab/parafold/internal/version"
)

// viewOptions are the flags of the interactive navigator.
type viewOptions struct {
	expanded   bool
	singlePane bool
	noMouse    bool
	debounce   time.Duration
	navWidth   int
	logLevel   string
	logFile    string
}

func (o viewOptions) config() app.Config {
	cfg := app.DefaultConfig()
	cfg.Collapsed = !o.expanded
	cfg.DualPane = !o.singlePane
	cfg.Mouse = !o.noMouse
	cfg.Debounce = o.debounce
	cfg.NavWidth = o.navWidth
	return cfg
}

func newRootCmd() *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "parafold [flags] FILE",
		Short: "Browse a text document as a collapsible outline",
		Long: `Parafold splits a text document into paragraphs at blank lines and shows
them as a collapsible outline.

The left pane lists every paragraph by its first line. The right pane shows
the document, where each paragraph is either folded to its first line or
expanded in full. Use "-" as FILE to read standard input.

Press ? inside the navigator for the key bindings.`,
		Example: `  # Browse a file with every paragraph folded
  parafold notes.txt

  # Start with everything expanded in a single pane
  parafold --expanded --single-pane notes.txt

  # Read from a pipe and log key handling to a file
  git log | parafold --log-level debug --log-file /tmp/parafold.log -`,
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.expanded, "expanded", false, "Start with every paragraph expanded")
	flags.BoolVar(&opts.singlePane, "single-pane", false, "Hide the paragraph list and show only the content")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse wheel and click handling")
	flags.DurationVar(&opts.debounce, "debounce", app.DefaultDebounce, "Delay used to coalesce redraws (0 redraws after every event)")
	flags.IntVar(&opts.navWidth, "nav-width", renderui.DefaultNavWidth, "Preferred width of the paragraph list in columns")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off when empty")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file path (default "+logging.DefaultPath()+")")

	cmd.AddCommand(newOutlineCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runView(cmd *cobra.Command, path string, opts viewOptions) error {
	if err := logging.Initialize(opts.logLevel, opts.logFile); err != nil {
		return err
	}
	defer logging.Sync()

	doc, err := document.Load(path)
	if err != nil {
		logging.Error("document unavailable", zap.String("path", path), zap.Error(err))
		return err
	}
	logging.Info("document loaded",
		zap.String("path", path),
		zap.Int("bytes", doc.Size),
		zap.Int("paragraphs", len(doc.Paragraphs)),
	)

	navigator, err := app.NewApplication(doc, opts.config())
	if err != nil {
		return err
	}
	defer func() {
		_ = navigator.Close()
	}()

	return navigator.Run(cmd.Context())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "parafold %s\n", version.Full())
		},
	}
}
