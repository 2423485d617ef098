package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mimiqdev/pokescript/internal/selector"
	"github.com/mimiqdev/pokescript/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newBrowseCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ui"},
		Short:   "Browse all pokemon in an interactive TUI",
		Long: `Browse the pokemon catalog and preview sprites in an interactive terminal UI.

Controls:
  ↑/↓ or j/k    Navigate pokemon
  /             Search by name
  c             Clear search
  s             Toggle shiny
  b             Toggle big sprite
  f             Cycle through alternate forms
  r             Jump to a random pokemon
  q / Esc       Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, v)
			if err != nil {
				return err
			}

			sel := selector.New(a.catalog, selector.WithLogger(a.logger))
			p := tea.NewProgram(
				tui.NewBrowser(a.catalog, a.store, sel, a.cfg.Large),
				tea.WithAltScreen(),
			)

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}
}
