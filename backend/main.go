package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"kamakpos/m/internal/api"
	"kamakpos/m/internal/config"
	"kamakpos/m/internal/core"
	"kamakpos/m/internal/database"
	"kamakpos/m/internal/devicestate"
	"kamakpos/m/internal/erp"
	"kamakpos/m/internal/migrations"
	"kamakpos/m/internal/receipt"
	"kamakpos/m/internal/seed"
	"kamakpos/m/internal/support"
	"kamakpos/m/pkg/logx"
)

func main() {
	if !core.ParseEnvironment(os.Getenv("ENVIRONMENT")).IsProduction() {
		if err := godotenv.Load(); err != nil {
			logx.Warn().Err(err).Msg("no .env file loaded")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid configuration")
	}
	logx.Init(logx.Options{Environment: cfg.Env()})

	db, err := database.Connect(cfg.DeviceStore.Driver, cfg.DeviceStore.DSN)
	if err != nil {
		logx.Fatal().Err(err).Msg("unable to connect to database")
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		logx.Fatal().Err(err).Msg("unable to run migrations")
	}
	seed.LoadSupportTickets(db, cfg.SupportSeedCSV)

	var store devicestate.Store = devicestate.NewSQLStore(db)
	if cfg.DeviceStore.Backend == config.BackendRedis {
		client, err := cfg.Redis.New(context.Background())
		if err != nil {
			logx.Fatal().Err(err).Msg("unable to connect to redis")
		}
		defer client.Close()
		store = devicestate.NewRedisStore(client, cfg.SessionTTL)
	}

	client := erp.New(erp.Config{
		BaseURL:  cfg.ERP.BaseURL,
		Username: cfg.ERP.BasicAuthUsername,
		Password: cfg.ERP.BasicAuthPassword,
		Timeout:  cfg.ERP.Timeout,
	})

	handler := api.New(client, store, support.NewRepository(db), receipt.NewPrinter(cfg.ChromePath), api.Options{
		Secret:       cfg.Secret,
		SessionTTL:   cfg.SessionTTL,
		TaxRate:      decimal.NewFromFloat(cfg.TaxRate),
		Company:      cfg.Company,
		SecureCookie: cfg.Env() != core.Development,
	})

	logx.Info().
		Str("port", cfg.HTTPPort).
		Str("env", cfg.Env().String()).
		Str("erp", cfg.ERP.BaseURL).
		Str("deviceStore", cfg.DeviceStore.Backend).
		Msg("Kamak POS server starting")
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		logx.Fatal().Err(err).Msg("server error")
	}
}
