package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	httpserver "github.com/avelarde/planlevel/internal/http"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the leveling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.HTTPAddr
			}

			handler := httpserver.NewServer(app.Log)
			app.Log.Info().Str("addr", addr).Msg("listening")
			return http.ListenAndServe(addr, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to the configured http.addr)")

	return cmd
}
