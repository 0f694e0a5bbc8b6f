// Package main provides the resume_wizard CLI: validate, preview and export resume documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-wizard/internal/config"
	"github.com/jonathan/resume-wizard/internal/observability"
	"github.com/jonathan/resume-wizard/internal/resumefile"
	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "resume_wizard",
	Short: "Resume Wizard",
	Long: `Resume Wizard validates a resume document section by section, previews it as HTML,
and exports it as HTML, PDF or a Word (.docx) file.

Resume documents are JSON or YAML files. Start one with "resume_wizard new".`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./resume-wizard.yaml or ~/.config/resume-wizard/resume-wizard.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().String("schema", "", "JSON Schema file resume documents are checked against (default: built-in resume schema)")

	if err := viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag(config.KeySchemaPath, rootCmd.PersistentFlags().Lookup("schema")); err != nil {
		panic(fmt.Sprintf("failed to bind schema flag: %v", err))
	}
}

// configErr holds the config file error from initConfig until a command asks for settings
var configErr error

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")

	used, err := config.ReadConfig(viper.GetViper(), cfgFile)
	configErr = err
	if used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

// verbosePrinter returns a Printer on the command's stderr when --verbose is set, nil otherwise
func verbosePrinter(cmd *cobra.Command) *observability.Printer {
	if !viper.GetBool(config.KeyVerbose) {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// loadSettings resolves the effective configuration for a command
func loadSettings() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadResume reads the resume at path, checked against cfg's schema file when one is set
func loadResume(cfg *config.Config, path string) (*types.Resume, error) {
	var (
		resume *types.Resume
		err    error
	)
	if cfg.SchemaPath != "" {
		resume, err = resumefile.LoadWithSchema(path, cfg.SchemaPath)
	} else {
		resume, err = resumefile.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	return resume, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
