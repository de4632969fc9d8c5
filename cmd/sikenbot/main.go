package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/letsssgooo/sikenBot/internal/bot"
	"github.com/letsssgooo/sikenBot/internal/dispatch"
	"github.com/letsssgooo/sikenBot/internal/lib/slogcustom"
	"github.com/letsssgooo/sikenBot/internal/registry"
	"github.com/letsssgooo/sikenBot/internal/schedule"
	"github.com/letsssgooo/sikenBot/internal/scrape"
	"github.com/letsssgooo/sikenBot/internal/slack"
	"github.com/letsssgooo/sikenBot/internal/storage"
	"github.com/letsssgooo/sikenBot/internal/storage/postgres"
	"github.com/spf13/pflag"
)

func main() {
	log := setupLogger()
	slog.SetDefault(log)
	slog.Info("starting siken bot...")

	_ = godotenv.Load()

	flagToken := pflag.String("token", os.Getenv("SLACK_BOT_TOKEN"), "slack bot token")
	flagChannel := pflag.String("channel", envOr("QUIZ_CHANNEL", "ipa-db"), "channel for scheduled quizzes")
	flagAddr := pflag.String("addr", envOr("ADDR", ":8080"), "webhook listen address")
	flagDSN := pflag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "postgres dsn for team storage")
	flagSiteURL := pflag.String("site-url", envOr("SITE_URL", "http://www.db-siken.com/"), "quiz site listing url")
	flagCronSpec := pflag.String("cron-spec", envOr("CRON_SPEC", "0 9,13,18 * * 1-5"), "quiz schedule")
	flagTZ := pflag.String("tz", envOr("TZ", "Asia/Tokyo"), "schedule timezone")
	pflag.Parse()

	if *flagToken == "" {
		slog.Error("slack bot token is required")
		os.Exit(1)
	}

	loc, err := time.LoadLocation(*flagTZ)
	if err != nil {
		slog.Error("invalid timezone", "tz", *flagTZ, "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	st, err := setupStorage(ctx, *flagDSN)
	if err != nil {
		slog.Error("could not connect to storage", "err", err)
		os.Exit(1)
	}

	client := slack.NewHTTPClient(*flagToken)
	extractor := scrape.NewExtractor(scrape.NewHTTPFetcher(), *flagSiteURL)
	dispatcher := dispatch.NewDispatcher(extractor)
	scheduler := schedule.NewScheduler(*flagCronSpec, loc)

	b := bot.NewBot(client, dispatcher, scheduler, registry.NewRegistry(), st, *flagChannel)
	defer b.Shutdown()

	if err := b.ConnectTeams(ctx); err != nil {
		slog.Error("could not connect teams", "err", err)
		os.Exit(1)
	}

	server := bot.NewServer(b)
	if err := server.Run(*flagAddr); err != nil {
		slog.Error("webhook server stopped", "err", err)
		os.Exit(1)
	}
}

func setupLogger() *slog.Logger {
	log := slog.New(slogcustom.NewCustomHandler(os.Stdout, slog.LevelDebug))
	return log
}

// setupStorage выбирает хранилище: postgres при заданном dsn, иначе память.
func setupStorage(ctx context.Context, dsn string) (storage.Storage, error) {
	if dsn == "" {
		return storage.NewMemoryStorage(), nil
	}

	return postgres.NewStorage(ctx, dsn)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
