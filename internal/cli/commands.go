// Package cli implements the watchlist terminal commands.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stock_watchlist/internal/app/config"
	"stock_watchlist/internal/app/di"
	"stock_watchlist/internal/feature/quotes/domain/entity"
	watchlistentity "stock_watchlist/internal/feature/watchlist/domain/entity"
	watchlistusecase "stock_watchlist/internal/feature/watchlist/usecase"
	"stock_watchlist/internal/platform/logging"
)

// Builder wires the application from a loaded config.
type Builder func(ctx context.Context, cfg *config.Config) (*di.App, error)

type runner struct {
	cfgPath string
	build   Builder
	app     *di.App
}

// NewRootCmd creates the root command wired against the real quote service.
func NewRootCmd() *cobra.Command {
	return newRootCmd(di.Build)
}

func newRootCmd(build Builder) *cobra.Command {
	r := &runner{build: build}

	rootCmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Track stock quotes from the terminal",
		Long: `watchlist keeps a personal list of ticker symbols, shows their latest
quotes and draws simulated price charts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if r.app == nil {
				return nil
			}
			return r.app.Close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&r.cfgPath, "config", config.DefaultPath, "path to the YAML config file")

	rootCmd.AddCommand(
		r.newListCmd(),
		r.newAddCmd(),
		r.newRemoveCmd(),
		r.newSearchCmd(),
		r.newQuoteCmd(),
		r.newChartCmd(),
	)
	return rootCmd
}

func (r *runner) setup(ctx context.Context) error {
	cfg, err := config.Load(r.cfgPath)
	if err != nil {
		return err
	}
	// fallback warnings would drown the table
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	logging.Setup(cfg.Log)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	app, err := r.build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	r.app = app
	return nil
}

func (r *runner) newListCmd() *cobra.Command {
	var selected string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Refresh and show every quote on the watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := r.app.Watchlist.Refresh(cmd.Context())
			r.render(cmd, selected)
			return err
		},
	}
	cmd.Flags().StringVar(&selected, "select", "", "symbol to highlight")
	return cmd
}

func (r *runner) newAddCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "add SYMBOL",
		Short: "Add a symbol to the watchlist",
		Example: `  watchlist add NFLX
  watchlist add nflx --name "Netflix, Inc."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := r.app.Watchlist.Refresh(ctx); err != nil {
				return err
			}
			q, err := r.app.Watchlist.AddFromSearch(ctx, entity.SearchResult{Symbol: args[0], Name: name})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", q.Symbol)
			r.render(cmd, q.Symbol)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the quote's company name)")
	return cmd
}

func (r *runner) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove SYMBOL",
		Aliases: []string{"rm"},
		Short:   "Remove a symbol from the watchlist",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := r.app.Watchlist.Refresh(ctx); err != nil {
				return err
			}
			symbol := entity.NormalizeSymbol(args[0])
			if !r.app.Watchlist.Contains(symbol) {
				return fmt.Errorf("%s is not on the watchlist", symbol)
			}
			if err := r.app.Watchlist.Remove(ctx, symbol); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", symbol)
			r.render(cmd, "")
			return nil
		},
	}
}

func (r *runner) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search symbols not yet on the watchlist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if !entity.Searchable(query) {
				return fmt.Errorf("query must be at least %d characters", entity.MinQueryLength)
			}

			ctx := cmd.Context()
			results, err := r.app.Quotes.SearchStocks(ctx, query)
			if err != nil {
				return err
			}
			tracked, err := r.trackedSymbols(ctx)
			if err != nil {
				return err
			}
			RenderSearchResults(cmd.OutOrStdout(), len(results), entity.FilterExisting(results, tracked))
			return nil
		},
	}
}

func (r *runner) newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote SYMBOL",
		Short: "Show the latest quote for one symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := r.app.Quotes.GetStockQuote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), FormatQuoteLine(q, false))
			return nil
		},
	}
}

func (r *runner) newChartCmd() *cobra.Command {
	var (
		period string
		height int
	)
	cmd := &cobra.Command{
		Use:   "chart SYMBOL",
		Short: "Draw a simulated price chart",
		Long: `Draw a simulated price chart. Historical prices are generated locally
on every call; live history is not available.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := entity.ParsePeriod(period)
			if err != nil {
				return fmt.Errorf("%w: %q (want one of %s)", err, period, periodNames())
			}
			c, err := r.app.Chart.GetChart(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), RenderChart(c, height))
			return nil
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", string(entity.Period1D), "time range: "+periodNames())
	cmd.Flags().IntVar(&height, "height", DefaultChartHeight, "chart height in rows")
	return cmd
}

// trackedSymbols returns the persisted list, or the defaults when nothing
// has been saved yet.
func (r *runner) trackedSymbols(ctx context.Context) ([]string, error) {
	symbols, err := r.app.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}
	symbols = watchlistentity.CleanSymbols(symbols)
	if len(symbols) == 0 {
		return watchlistentity.Defaults(), nil
	}
	return symbols, nil
}

// render prints the current state with selected reconciled against the list.
func (r *runner) render(cmd *cobra.Command, selected string) {
	s := r.app.Watchlist.Snapshot()

	var sel watchlistusecase.Selection
	sel.Select(selected)
	if q, ok := sel.Reconcile(s.Quotes); ok {
		selected = q.Symbol
	}
	RenderWatchlist(cmd.OutOrStdout(), s, selected)
}

func periodNames() string {
	names := make([]string, len(entity.Periods))
	for i, p := range entity.Periods {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
