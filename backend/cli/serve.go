package cli

import (
	"os"
	"os/signal"
	"syscall"

	"khelkhatm/backend/activity"
	"khelkhatm/backend/controllers"
	"khelkhatm/backend/middleware"
	"khelkhatm/backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"
)

// NewApp builds the HTTP application. snapshots may be nil when no activity
// backend is configured.
func NewApp(env *Env, client *activity.Client, snapshots controllers.Snapshotter) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Khel Khatm",
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, x-api-key",
	}))
	app.Use(middleware.LoggingMiddleware(env.Logger))

	routes.SetupRoutes(app, env.Repo, env.Cfg, client, snapshots, env.Logger)
	return app
}

func NewServeCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}

			client := activity.NewClient(env.Cfg.LeetCodeBackendURL, env.Cfg.LeetCodeAPIKey)

			var snapshots controllers.Snapshotter
			if client.BaseURL != "" {
				poller := activity.NewPoller(client, env.Cfg.PollInterval, env.Logger)
				if err := poller.Start(); err != nil {
					return err
				}
				defer poller.Stop()
				snapshots = poller
			} else {
				env.Logger.Println("LEETCODE_BACKEND_URL not set, activity polling disabled")
			}

			app := NewApp(env, client, snapshots)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				if err := app.Shutdown(); err != nil {
					env.Logger.Printf("shutdown: %v", err)
				}
			}()

			env.Logger.Printf("listening on :%s", env.Cfg.ServerPort)
			return app.Listen(":" + env.Cfg.ServerPort)
		},
	}
}
