package cli

import (
	"net"

	"github.com/spf13/cobra"

	"github.com/newjenk/gridsystem/internal/server"
)

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		profile string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the class engine over HTTP",
		Long: `Serve exposes the engine as a JSON API:

  GET  /healthz
  GET  /v1/breakpoints
  POST /v1/classes           document body
  POST /v1/classes/{block}   bare attribute body

Query parameters: profile=canonical|legacy, strict=1, format=json|text|html.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			p, err := c.profileOr(profile)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner,
				server.WithProfile(p),
				server.WithLogger(loggerFromContext(ctx)),
				server.WithTimeouts(c.Config.Server.ReadTimeout.Duration, c.Config.Server.WriteTimeout.Duration),
			)
			return srv.ListenAndServe(ctx, addr, func(a net.Addr) {
				printSuccess("Serving on http://%s", a)
				printDetail("cache: %s · profile: %s", c.Config.Cache.Backend, p)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "default emission profile")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}
