package cmd

import (
	"errors"
	"fmt"

	"strategy-scanner/internal/catalog"
	"strategy-scanner/internal/composer"
	"strategy-scanner/internal/dto"
	"strategy-scanner/internal/render"
	"strategy-scanner/internal/repository"
	"strategy-scanner/internal/service"
	"strategy-scanner/pkg/logger"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var scanFlags struct {
	strategy  string
	path      string
	market    string
	symbols   string
	quicklist bool
}

var scanCmd = &cobra.Command{
	Use:          "scan",
	Short:        "Run one scan against the scan engine and print the results table",
	Example:      "  strategy-scanner scan --strategy moving-average --market US --symbols \"AAPL, MSFT\"\n  strategy-scanner scan --path /strategies/rb-knoxville --market India --quicklist",
	SilenceUsage: true,
	RunE:         runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFlags.strategy, "strategy", "s", "", "strategy id, e.g. moving-average")
	scanCmd.Flags().StringVar(&scanFlags.path, "path", "", "scanner page path; its last segment is used as the strategy id")
	scanCmd.Flags().StringVarP(&scanFlags.market, "market", "m", string(dto.MarketUS), "market to scan (US or India)")
	scanCmd.Flags().StringVar(&scanFlags.symbols, "symbols", "", "comma-separated symbols")
	scanCmd.Flags().BoolVarP(&scanFlags.quicklist, "quicklist", "q", false, "scan the market's quick-list instead of --symbols")
	scanCmd.MarkFlagsMutuallyExclusive("strategy", "path")
	scanCmd.MarkFlagsMutuallyExclusive("symbols", "quicklist")
}

func runScan(cmd *cobra.Command, args []string) error {
	strategyID := scanFlags.strategy
	if scanFlags.path != "" {
		strategyID = composer.StrategyFromPath(scanFlags.path)
	}
	if strategyID == "" {
		return errors.New("one of --strategy or --path is required")
	}

	market := dto.Market(scanFlags.market)
	if !market.IsValid() {
		return fmt.Errorf("%w: %s", dto.ErrUnknownMarket, scanFlags.market)
	}

	appDep, err := NewAppDependency(cmd.Context())
	if err != nil {
		return err
	}
	defer appDep.Close()

	if _, err := catalog.Find(strategyID); err != nil {
		appDep.log.Warn("Strategy is not in the catalog, the engine decides", logger.StringField("strategy", strategyID))
	}

	view := composer.New(strategyID)
	view.SetMarket(market)
	if scanFlags.quicklist {
		list, _ := view.ApplyQuickList()
		fmt.Fprintf(cmd.ErrOrStderr(), "Scanning quick-list %s\n", list.Name)
	} else {
		view.SetSymbols(scanFlags.symbols)
	}

	repo := repository.NewRepository(appDep.cfg, appDep.log)
	scanService := service.NewScanService(appDep.log, repo.ScanEngineRepo)

	state := scanService.Submit(cmd.Context(), view)
	if state.Phase == composer.PhaseFailed {
		return errors.New(state.Reason)
	}

	rows := render.New(language.English).Rows(state.Results)
	fmt.Fprintln(cmd.OutOrStdout(), render.Terminal(rows))
	return nil
}
