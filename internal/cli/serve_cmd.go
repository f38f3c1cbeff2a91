package cli

import (
	"fmt"

	"github.com/alexanderramin/courseload/internal/cli/formatter"
	"github.com/alexanderramin/courseload/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimator over HTTP",
		Long: `Serve the estimator as a JSON API:

  POST /api/estimate   course JSON in, estimate out
  GET  /api/rates      both rate tables
  GET  /healthz        liveness
  GET  /metrics        Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.Config.Server.Addr
			}
			if !a.verbose {
				gin.SetMode(gin.ReleaseMode)
			}

			srv := server.New(a.Estimator, a.Rates, a.Logger, a.Config.Course.DefaultWeeks)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Serving on "+addr+" (Ctrl+C to stop)"))
			return srv.Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")
	return cmd
}
