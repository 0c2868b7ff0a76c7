package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/server"
	"github.com/de-tools/ledger-atlas/pkg/services/config"
	"github.com/de-tools/ledger-atlas/pkg/services/insights"
	"github.com/de-tools/ledger-atlas/pkg/store/books"
	"github.com/de-tools/ledger-atlas/pkg/store/sqlite"
	sqlitetrend "github.com/de-tools/ledger-atlas/pkg/store/sqlite/trend"
)

var (
	cfgPath      string
	settingsPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Ledger Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.ledgercfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .ledgercfg file (default is $HOME/.ledgercfg)")
	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to an optional insights settings file (pacing, expense policy)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	insightsCfg := insights.DefaultConfig()
	if settingsPath != "" {
		loaded, err := insights.LoadConfig(settingsPath)
		if err != nil {
			return fmt.Errorf("failed to load insights settings: %w", err)
		}
		insightsCfg = *loaded
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: "ledger-atlas.db"})
	if err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	trendStore, err := sqlitetrend.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create trend store: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Found the following profiles:")
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`, Realm: `%s`", profile.Name, profile.RealmID)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Registry: registry,
			Services: func(profile domain.CompanyProfile) insights.Service {
				return insights.NewService(books.NewClient(profile), insightsCfg)
			},
			Trends: trendStore,
		},
	})

	return api.Start()
}
