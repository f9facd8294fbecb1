// Package main is the entry point for the mdtools CLI: Markdown
// heading editing, format conversion, and the upload web front end.
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

// rootCmd is the base command for the mdtools CLI.
var rootCmd = &cobra.Command{
	Use:   "mdtools",
	Short: "Tools for working with Markdown files",
	Long: `mdtools edits Markdown heading structure and converts Markdown
documents to DOCX, HTML, or plain text.

The edit subcommand shifts heading levels and adds or removes
structured heading numbering; the convert subcommand renders a document
to another format; serve runs the upload web front end.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdtools.yaml or ~/.config/mdtools/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdtools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdtools"))
		}
	}

	viper.SetEnvPrefix("MDTOOLS")
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
