package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"weather-ai-bot/internal/httpserver"
	tgDelivery "weather-ai-bot/internal/router/delivery/telegram"
	"weather-ai-bot/pkg/telegram"
)

const telegramWebhookPath = "/webhook/telegram"

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web chat, JSON API, web socket and Telegram webhook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	a, err := bootstrap(ctx, opts, false)
	if err != nil {
		return err
	}
	defer a.close()

	cfg, logger := a.cfg, a.l

	logger.Info(ctx, "Starting Weather + AI Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		bot.SetSecretToken(cfg.Telegram.SecretToken)
		telegramHandler = tgDelivery.New(logger, bot, a.router, cfg.Telegram.SecretToken)
		go registerWebhook(ctx, a, bot)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
		if cfg.Tunnel.Enabled {
			go logTunnel(ctx, a)
		}
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		Router:          a.router,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

// registerWebhook points Telegram at the configured webhook URL, or at the
// ngrok public URL when none is configured and the tunnel is enabled.
func registerWebhook(ctx context.Context, a *app, bot telegram.IBot) {
	webhookURL := a.cfg.Telegram.WebhookURL
	if webhookURL == "" && a.cfg.Tunnel.Enabled {
		publicURL, err := detectNgrokURL(ctx, a.cfg.Tunnel.NgrokAPI, ngrokAttempts, ngrokInterval)
		if err != nil {
			a.l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = publicURL + telegramWebhookPath
		a.l.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if webhookURL == "" {
		a.l.Warn(ctx, "Telegram webhook not registered: set telegram.webhook_url or enable the tunnel")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		a.l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	a.l.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}

func logTunnel(ctx context.Context, a *app) {
	publicURL, err := detectNgrokURL(ctx, a.cfg.Tunnel.NgrokAPI, ngrokAttempts, ngrokInterval)
	if err != nil {
		a.l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		return
	}
	a.l.Infof(ctx, "Public URL: %s", publicURL)
}
