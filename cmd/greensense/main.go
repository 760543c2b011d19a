package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/verdantlabs/greensense/internal/profile"
	"github.com/verdantlabs/greensense/server"
	"github.com/verdantlabs/greensense/store"
	"github.com/verdantlabs/greensense/store/db"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "greensense",
	Short: "Track daily green habits and see the impact add up",
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:               viper.GetString("mode"),
			Addr:               viper.GetString("addr"),
			Port:               viper.GetInt("port"),
			Data:               viper.GetString("data"),
			Driver:             viper.GetString("driver"),
			DSN:                viper.GetString("dsn"),
			Version:            version,
			AnalyticsEnabled:   viper.GetBool("analytics-enabled"),
			SuggestionsEnabled: viper.GetBool("suggestions-enabled"),
			RateLimitEnabled:   viper.GetBool("rate-limit-enabled"),
		}
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			slog.Error("failed to create db driver", slog.String("error", err.Error()))
			os.Exit(1)
		}

		storeInstance := store.New(dbDriver, instanceProfile)
		if err := storeInstance.Migrate(ctx); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}

		s, err := server.NewServer(ctx, instanceProfile, storeInstance)
		if err != nil {
			slog.Error("failed to create server", slog.String("error", err.Error()))
			os.Exit(1)
		}

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			return s.Start(groupCtx)
		})
		group.Go(func() error {
			<-groupCtx.Done()
			s.Shutdown(context.Background())
			return nil
		})
		if err := group.Wait(); err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	},
}

func init() {
	// .env is optional; environment variables win when both are set.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("mode", "demo", `mode of server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8230, "port of server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver")
	rootCmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")
	rootCmd.PersistentFlags().Bool("analytics-enabled", true, "expose the stats endpoint")
	rootCmd.PersistentFlags().Bool("suggestions-enabled", true, "expose the suggestions endpoints")
	rootCmd.PersistentFlags().Bool("rate-limit-enabled", false, "enable per-client rate limiting")

	for _, flag := range []string{"mode", "addr", "port", "data", "driver", "dsn", "analytics-enabled", "suggestions-enabled", "rate-limit-enabled"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	viper.SetEnvPrefix("greensense")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	logLevel := slog.LevelInfo
	if os.Getenv("GREENSENSE_LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
