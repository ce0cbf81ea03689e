package cmd

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/lined/foundation/core/log"
	"github.com/msto63/lined/internal/document"
	"github.com/msto63/lined/internal/tui"
	"github.com/msto63/lined/pkg/core/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive TUI",
	Long: `Startet die Terminal User Interface (TUI) von lined.

Die TUI zeigt das Dokument mit Zeilennummern, die Ausgabe des letzten
Befehls und eine Eingabezeile. Es gelten dieselben Befehle wie im
zeilenweisen Modus.

Navigation:
  Enter     - Befehl ausführen
  Esc       - Beenden
  Ctrl+C    - Beenden`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stderr shares the terminal with the alternate screen
	logger := mdwlog.Discard()
	if verbose {
		logCfg := logging.FromConfig("lined", cfg.General, verbose)
		logCfg.Output = cmd.ErrOrStderr()
		logger = logging.NewLogger(logCfg)
	}

	doc := document.New(document.Options{MaxLineSize: cfg.Document.MaxLineSize})
	model := tui.NewModel(doc, tui.Options{
		Diagnostics: cfg.Interpreter.Diagnostics,
		Logger:      logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}

	return nil
}
