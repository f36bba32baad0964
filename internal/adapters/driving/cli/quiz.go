package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	cartlog "github.com/nordfuton/quizmatch-cli/internal/adapters/driven/cart/log"
	catalogfile "github.com/nordfuton/quizmatch-cli/internal/adapters/driven/catalog/file"
	configfile "github.com/nordfuton/quizmatch-cli/internal/adapters/driven/config/file"
	leadlog "github.com/nordfuton/quizmatch-cli/internal/adapters/driven/leads/log"
	"github.com/nordfuton/quizmatch-cli/internal/adapters/driven/leads/webhook"
	"github.com/nordfuton/quizmatch-cli/internal/adapters/driving/tui"
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driven"
	"github.com/nordfuton/quizmatch-cli/internal/core/services"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run the interactive futon quiz",
	Long: `Launch the interactive quiz wizard in the terminal.

The wizard walks through the same questions as the storefront quiz:
how many sleepers, body weight, sleep position and firmness
preference, then contact details, and ends with the ranked
recommendations.

Controls:
  ↑/k, ↓/j - Navigate choices
  Tab      - Next input field
  Enter    - Confirm / Continue
  Esc      - Back
  Ctrl+C   - Quit`,
	RunE: runQuiz,
}

func init() {
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, _ []string) error {
	// Stack traces beat a garbled alternate screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in quiz: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("quiz needs an interactive terminal, use \"quizmatch recommend\" in scripts")
	}

	cfg, err := openConfig()
	if err != nil {
		return err
	}
	catPath, err := catalogPath(cfg)
	if err != nil {
		return err
	}
	mappings, err := configfile.NewMappingStore(mappingsPath(cfg))
	if err != nil {
		return err
	}
	// Hot reload so a mapping edit lands without restarting the quiz.
	if err := mappings.Watch(cmd.Context()); err != nil {
		return err
	}

	engine := services.NewEngine(catalogfile.NewCatalog(catPath), mappings, engineOptions(cfg))

	ports := tui.NewPorts(services.NewSession(), engine)
	ports.Leads = leadSink(cfg)
	ports.Cart = cartlog.NewGateway(os.Stderr)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("quiz error: %w", err)
	}
	return nil
}

// leadSink picks the lead destination: the configured webhook, or a
// local log when none is set.
func leadSink(cfg *configfile.ConfigStore) driven.LeadSink {
	if url := cfg.GetString("leads.webhook_url"); url != "" {
		return webhook.NewSink(webhook.Config{
			URL:               url,
			RequestsPerSecond: float64(cfg.GetInt("leads.requests_per_second")),
			BurstSize:         cfg.GetInt("leads.burst_size"),
		})
	}
	return leadlog.NewSink(os.Stderr)
}
