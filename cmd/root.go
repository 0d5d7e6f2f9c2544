// Package cmd implements the command-line interface for cleverscrape.
// It provides the root command and the crawl, clean, and validate
// subcommands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cleancmd "github.com/jonesrussell/cleverscrape/cmd/clean"
	crawlcmd "github.com/jonesrussell/cleverscrape/cmd/crawl"
	validatecmd "github.com/jonesrussell/cleverscrape/cmd/validate"
	"github.com/jonesrussell/cleverscrape/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug logging for all commands.
	Debug bool

	// rootCmd represents the root command for the cleverscrape CLI.
	rootCmd = &cobra.Command{
		Use:   "cleverscrape",
		Short: "A product catalog scraper and cleaner",
		Long: `cleverscrape crawls a product catalog website into raw JSON records,
then cleans and validates the scraped data in separate passes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get debug flag before creating logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cleverscrape version %s\n", "1.0.0")
		},
	})

	rootCmd.AddCommand(crawlcmd.Command())
	rootCmd.AddCommand(cleancmd.Command())
	rootCmd.AddCommand(validatecmd.Command())
}

// initConfig reads in the config file and environment variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Environment variables take precedence over config file and defaults
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults()

	// Config file is optional; defaults and environment cover everything
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if Debug {
		viper.Set("logger.level", "debug")
		viper.Set("logger.development", true)
	}

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
	return nil
}
