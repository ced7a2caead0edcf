package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/api"
	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/environment"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	var maxBody int64

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation API over HTTP",
		Long: `Serve the validation API. Server settings come from HTTP_ADDR,
HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT and
HTTP_SHUTDOWN_TIMEOUT; --addr overrides HTTP_ADDR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			var httpCfg httpserver.Config
			if err := config.Load(&httpCfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				httpCfg.Addr = addr
			}

			router := api.NewRouter(a.validator,
				api.WithLogger(a.logger),
				api.WithTranslator(a.translator),
				api.WithEnvironment(environment.Parse(a.cfg.Env)),
				api.WithMaxBodySize(maxBody),
				api.WithReadiness(httpserver.Check{
					Name:  "messages",
					Check: a.checkLanguage,
				}),
			)

			srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(a.logger))
			return srv.Run(cmd.Context(), router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", api.DefaultMaxBodySize, "maximum request body size in bytes")
	return cmd
}

// checkLanguage reports whether the configured language has a catalog.
func (a *app) checkLanguage(context.Context) error {
	if !slices.Contains(a.translator.SupportedLanguages(), a.cfg.Lang) {
		return fmt.Errorf("no messages for language %q", a.cfg.Lang)
	}
	return nil
}
