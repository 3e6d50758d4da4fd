package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/sanity"
)

var (
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site backed by Sanity",
	Long: `portfolio serves a developer portfolio whose copy lives in a Sanity
content lake. Sections load independently and fall back to built-in copy
when the CMS has nothing or cannot be reached.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log.Level, cfg.Release())
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func newClient() *sanity.Client {
	return sanity.NewClient(sanity.Config{
		ProjectID:  cfg.Sanity.ProjectID,
		Dataset:    cfg.Sanity.Dataset,
		APIVersion: cfg.Sanity.APIVersion,
		UseCDN:     cfg.Sanity.UseCDN,
		Token:      cfg.Sanity.Token,
		APIHost:    cfg.Sanity.APIHost,
		Timeout:    cfg.Sanity.Timeout,
	})
}
