package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/wisepayru/banking/internal/auth"
	"github.com/wisepayru/banking/internal/config"
	"github.com/wisepayru/banking/internal/sink"
	"github.com/wisepayru/banking/internal/webhook"
	"github.com/wisepayru/banking/pkg/httpx"
)

const (
	serviceName    = "banking-webhook-handler"
	serviceVersion = "1.0.0"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	// Fail closed: without a configured token every request would be
	// rejected anyway, so refuse to start at all.
	if cfg.WebhookToken == "" {
		logger.Error("WEBHOOK_TOKEN (or WEBHOOK_TOKEN_FILE) is required")
		os.Exit(1)
	}

	snk, err := buildSink(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize sink", "sink", cfg.Sink, "error", err)
		os.Exit(1)
	}
	if closer, ok := snk.(io.Closer); ok {
		defer closer.Close()
	}

	h := webhook.NewHandler(auth.New(cfg.WebhookToken), snk, logger)

	r := chi.NewRouter()
	r.Get("/healthcheck", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status":  "healthy",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
	h.Register(r)

	logger.Info("listening", "service", serviceName, "version", serviceVersion,
		"port", cfg.Port, "sink", cfg.Sink)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func buildSink(cfg *config.Config, logger *slog.Logger) (sink.Sink, error) {
	switch cfg.Sink {
	case "amqp":
		return sink.NewAMQPSink(cfg.AMQP.URL, cfg.AMQP.Exchange)
	case "kafka":
		return sink.NewKafkaSink(cfg.Kafka.Broker, cfg.Kafka.Topic), nil
	default:
		return sink.NewLogSink(logger), nil
	}
}
