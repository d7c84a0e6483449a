package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	numberStyle   = cellStyle.Align(lipgloss.Right)
	headerStyle   = cellStyle.Bold(true)
	positiveStyle = cellStyle.Foreground(lipgloss.Color("2"))
	negativeStyle = cellStyle.Foreground(lipgloss.Color("1"))
)

// Terminal draws rows as a bordered table for the CLI.
func Terminal(rows []Row) string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = row.Cells()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers...).
		Rows(cells...).
		StyleFunc(func(r, c int) lipgloss.Style {
			if r == table.HeaderRow {
				return headerStyle
			}
			if r < 0 || r >= len(rows) {
				return cellStyle
			}
			switch c {
			case 1:
				return signalStyle(rows[r].Buy)
			case 2:
				return signalStyle(rows[r].Sell)
			case 3, 4, 5, 6, 7:
				return numberStyle
			}
			return cellStyle
		})

	return t.String()
}

func signalStyle(cell SignalCell) lipgloss.Style {
	if cell.Positive {
		return positiveStyle
	}
	return negativeStyle
}
