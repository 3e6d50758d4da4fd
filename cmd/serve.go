package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/site"
	"github.com/Zachkp/portfolio/internal/store"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `serve opens the site database, removes visitor records past their
retention window and serves the portfolio until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			cfg.Server.Port = servePort
		}
		gin.SetMode(cfg.Server.Mode)

		if cfg.Sanity.ProjectID == "" {
			logger.Warn("SANITY_PROJECT_ID is not set; every section will show fallback content")
		}

		st, err := store.Open(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if removed, err := st.CleanupVisitors(ctx); err != nil {
			logger.Warn("visitor cleanup failed", zap.Error(err))
		} else if removed > 0 {
			logger.Info("privacy cleanup", zap.Int64("removed", removed))
		}
		if removed, err := st.CleanupFetchEvents(ctx); err != nil {
			logger.Warn("fetch event cleanup failed", zap.Error(err))
		} else if removed > 0 {
			logger.Info("fetch log cleanup", zap.Int64("removed", removed))
		}

		srv, err := site.New(site.Deps{
			Config:  cfg,
			Fetcher: newClient(),
			Store:   st,
			Log:     logger,
		})
		if err != nil {
			return err
		}
		return srv.Run(ctx, ":"+cfg.Server.Port)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}
