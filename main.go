package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"timebot/internal/adapters/geocoder"
	"timebot/internal/adapters/handler"
	"timebot/internal/adapters/sender"
	"timebot/internal/adapters/tzdb"
	"timebot/internal/core/domain/command"
	"timebot/internal/core/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting timebot...")

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("geonames.base_url", geocoder.DefaultEndpoint)
	viper.SetDefault("geonames.username", geocoder.DefaultUsername)
	viper.SetDefault("geonames.timeout", "10s")
	viper.SetDefault("handler.timeout", "30s")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Info().Msg("no config file found, using defaults and environment")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	token := viper.GetString("telegram.bot_token")
	if token == "" {
		log.Fatal().Msg("telegram.bot_token is not configured")
	}

	geoNames := geocoder.NewGeoNames(
		viper.GetString("geonames.base_url"),
		viper.GetString("geonames.username"),
		viper.GetDuration("geonames.timeout"))

	clock := service.NewClock(tzdb.New())

	dispatcher, err := command.NewDispatcher(
		command.NewClassifier(viper.GetString("telegram.bot_username")),
		command.NewChain(geoNames, clock))
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing command dispatcher")
	}

	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	updateHandler := handler.NewUpdate(dispatcher, sender.NewTelegram(b), viper.GetDuration("handler.timeout"))

	b.RegisterHandlerMatchFunc(matchMessages, updateHandler.Handle)

	log.Info().Msg("bot listening")
	b.Start(ctx)
}

func matchMessages(update *models.Update) bool {
	return update.Message != nil || update.EditedMessage != nil
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
