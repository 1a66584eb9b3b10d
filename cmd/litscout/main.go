// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litscout CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litscout/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// logger is the process-wide structured logger; the search command swaps in
// a debug handler when --verbose is set.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// rootCmd is the base command for the litscout CLI.
var rootCmd = &cobra.Command{
	Use:   "litscout",
	Short: "Literature co-occurrence search for genes and proteins",
	Long: `litscout searches Europe PMC for publications that mention a gene or
protein together with optional disease, tissue and keyword terms. Each input
identifier is expanded into its known synonyms and textual variants through
UniProt and the EBI Ontology Lookup Service before the literature is queried,
so papers using any recorded spelling of the name are found.

Results are written to a YAML report and can optionally be archived in a
local SQLite database for later listing and export.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litscout.yaml or ~/.config/litscout/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litscout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litscout"))
		}
	}

	viper.SetEnvPrefix("LITSCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
