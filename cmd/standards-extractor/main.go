// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the standards-extractor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the standards-extractor CLI.
var rootCmd = &cobra.Command{
	Use:   "standards-extractor",
	Short: "Extract tabular records from the ANSI standards-listing PDF",
	Long: `standards-extractor reads a paginated ANSI standards-listing PDF,
segments each page on the entry marker phrase, applies per-field parsing
heuristics, and writes a normalized table of records.

Each stage is a subcommand: run executes the full pipeline, pages dumps
the raw per-page text for layout debugging, and index persists and
queries extracted records.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./standards-extractor.yaml or ~/.config/standards-extractor/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("standards-extractor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "standards-extractor"))
		}
	}

	viper.SetEnvPrefix("STANDARDS_EXTRACTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
