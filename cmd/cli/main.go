package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/ledger-atlas/pkg/adapters"
	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/services/config"
	"github.com/de-tools/ledger-atlas/pkg/services/insights"
	"github.com/de-tools/ledger-atlas/pkg/store/books"
)

var (
	cfgPath   string
	profile   string
	timeframe string
	year      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger-atlas",
		Short: "One-shot financial metrics from the accounting API",
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.ledgercfg", usr.HomeDir)

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .ledgercfg file")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "",
		"Company profile name")
	_ = rootCmd.MarkPersistentFlagRequired("profile")

	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "Print the current period's flat metrics",
		RunE:  runOverview,
	}
	overviewCmd.Flags().StringVarP(&timeframe, "timeframe", "t", "YEAR",
		"YEAR for year-to-date, MONTH for month-to-date")

	trendCmd := &cobra.Command{
		Use:   "trend",
		Short: "Print the twelve-month revenue/expense series",
		RunE:  runTrend,
	}
	trendCmd.Flags().IntVarP(&year, "year", "y", time.Now().Year(),
		"Calendar year to aggregate")

	rootCmd.AddCommand(overviewCmd, trendCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serviceFor(cmd *cobra.Command) (insights.Service, error) {
	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfgPath, err)
	}

	p, err := registry.GetProfile(cmd.Context(), profile)
	if err != nil {
		return nil, err
	}
	return insights.NewService(books.NewClient(*p), insights.DefaultConfig()), nil
}

func runOverview(cmd *cobra.Command, _ []string) error {
	svc, err := serviceFor(cmd)
	if err != nil {
		return err
	}

	tf, err := domain.ParseTimeframe(timeframe)
	if err != nil {
		return err
	}

	ctx := zerolog.New(os.Stderr).WithContext(cmd.Context())
	overview, err := svc.GetOverview(ctx, domain.CurrentPeriod(tf, time.Now()))
	if err != nil {
		return err
	}
	return printJSON(adapters.MapOverviewDomainToApi(*overview))
}

func runTrend(cmd *cobra.Command, _ []string) error {
	svc, err := serviceFor(cmd)
	if err != nil {
		return err
	}

	ctx := zerolog.New(os.Stderr).WithContext(cmd.Context())
	points := svc.GetMonthlyTrend(ctx, year)
	return printJSON(adapters.MapTrendPointsDomainToApi(year, points))
}

func printJSON(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
