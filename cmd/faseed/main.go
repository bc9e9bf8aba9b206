package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/faseed/internal/common"
	"github.com/Veraticus/faseed/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "faseed",
		Short: "🌱 Seed and inspect the Financial Assistance App database",
		Long: `faseed inserts test and sample rows into the Financial Assistance App's
SQLite database: a multi-year variable income history, an upcoming paycheck,
a week of test bills and diversification accounts. It can also list the
bills due in the coming week.

The database must already exist; run the app once to create it. Seeds are not
idempotent, so running one twice inserts its rows twice.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/faseed/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("db", "", fmt.Sprintf("database path (default: $APPDATA/%s/%s)", config.AppName, config.DatabaseFile))
	rootCmd.PersistentFlags().Bool("packaged", false, "use the packaged database at "+config.PackagedDatabasePath)
	rootCmd.PersistentFlags().Bool("fallback-account", false, "deposit into account 1 when no Checking or Savings account exists")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("database.packaged", rootCmd.PersistentFlags().Lookup("packaged"))
	_ = viper.BindPFlag("seed.allow_fallback", rootCmd.PersistentFlags().Lookup("fallback-account"))

	// Add commands
	rootCmd.AddCommand(incomeCmd())
	rootCmd.AddCommand(paycheckCmd())
	rootCmd.AddCommand(billsCmd())
	rootCmd.AddCommand(accountsCmd())
	rootCmd.AddCommand(upcomingCmd())
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, rolling back...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(os.Stderr, userErr.UserMessage)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/faseed", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// A .env in the working directory may set FASEED_ variables; real
	// environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// FASEED_DATABASE_PATH and friends
	viper.SetEnvPrefix("FASEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, flags and defaults apply
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}
	return common.SetupLogger(os.Stderr, level, viper.GetString("logging.format"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "faseed %s\n", version)
		},
	}
}
