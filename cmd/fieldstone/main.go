// cmd/fieldstone/main.go
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/fieldstonehq/fieldstone/internal/config"
	"github.com/fieldstonehq/fieldstone/internal/server"
	"github.com/spf13/cobra"
)

var version = "dev"

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "fieldstone",
	Short: "Fieldstone is a CRM service for field sales teams",
	Long:  `Fieldstone tracks owners, offices, employees, and the communication reports logged against them.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		cfg := config.Load()
		if err := server.Run(cfg, logger); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		db, err := server.SetupDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := server.AutoMigrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Migrations applied")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fieldstone %s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
