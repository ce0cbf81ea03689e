package cmd

import (
	"context"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/lined/foundation/core/log"
	"github.com/msto63/lined/internal/command"
	"github.com/msto63/lined/internal/document"
	"github.com/msto63/lined/pkg/core/config"
	"github.com/msto63/lined/pkg/core/logging"
)

var (
	cfgFile     string
	verbose     bool
	diagnostics bool
	maxLineSize int
)

var rootCmd = &cobra.Command{
	Use:   "lined",
	Short: "lined - Zeilenorientierter Texteditor",
	Long: `lined ist ein zeilenorientierter Texteditor. Befehle werden zeilenweise
von der Standardeingabe gelesen, Ausgaben erscheinen auf der Standardausgabe.

Befehle:
  insertEnd "text"    - Text am Ende anfügen
  insert 3 "text"     - Text an Zeile 3 einfügen
  delete 3            - Zeile 3 löschen
  edit 3 "text"       - Zeile 3 ersetzen
  print               - Dokument mit Zeilennummern ausgeben
  search "text"       - Zeilen mit dem Text ausgeben
  commands            - Befehle auflisten
  quit                - Beenden`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

// Execute runs the command tree with a background context
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the command tree with ctx, typically cancelled on SIGINT
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $LINED_CONFIG, ./configs/lined.toml, ./lined.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output (Debug-Logging auf stderr)")
	rootCmd.PersistentFlags().BoolVar(&diagnostics, "diagnostics", false, "Abgelehnte Befehle auf stderr melden")
	rootCmd.PersistentFlags().IntVar(&maxLineSize, "max-line-size", 0, "Maximale Zeilenlänge (default: aus Config, sonst 80)")
}

// loadConfig reads the configuration and applies flag overrides
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if maxLineSize != 0 {
		cfg.Document.MaxLineSize = maxLineSize
	}
	if diagnostics {
		cfg.Interpreter.Diagnostics = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logCfg := logging.FromConfig("lined", cfg.General, verbose)
	logCfg.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(logCfg)
	mdwlog.SetDefault(logger)

	opts := command.Options{
		Output: cmd.OutOrStdout(),
		Prompt: cfg.Interpreter.Prompt,
	}
	if cfg.Interpreter.Diagnostics {
		opts.Diagnostics = cmd.ErrOrStderr()
	}

	doc := document.New(document.Options{MaxLineSize: cfg.Document.MaxLineSize})
	interp := command.NewInterpreter(doc, opts)

	logger.Debug("editor started", mdwlog.Fields{
		"config":        cfg.Source,
		"max_line_size": doc.MaxLineSize(),
	})

	// Run cannot interrupt a blocked read, so cancellation is raced here.
	ctx := cmd.Context()
	errc := make(chan error, 1)
	go func() {
		errc <- interp.Run(ctx, cmd.InOrStdin())
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Debug("interrupted")
		return nil
	}
}
