package cmd

import (
	"fmt"
	"strings"

	"strategy-scanner/internal/catalog"
	"strategy-scanner/internal/dto"
	"strategy-scanner/internal/quicklist"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the strategies offered by the scanner",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "Name", "Path")
		for _, s := range catalog.List() {
			t.Row(s.ID, s.Name, "/strategies/"+s.ID)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	},
}

var quicklistCmd = &cobra.Command{
	Use:          "quicklist <market>",
	Short:        "Print a market's quick-list symbols",
	Args:         cobra.ExactArgs(1),
	ValidArgs:    []string{string(dto.MarketUS), string(dto.MarketIndia)},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, ok := quicklist.ForMarket(dto.Market(args[0]))
		if !ok {
			return fmt.Errorf("%w: %s", dto.ErrUnknownMarket, args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d symbols)\n%s\n", list.Name, len(strings.Split(list.Symbols, ",")), list.Symbols)
		return nil
	},
}
