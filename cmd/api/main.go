package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iesje/matricula_engine/internal/db"
	"github.com/iesje/matricula_engine/internal/enrollment"
	"github.com/iesje/matricula_engine/internal/env"
	"github.com/iesje/matricula_engine/internal/logger"
	"github.com/iesje/matricula_engine/internal/refdata"
	"github.com/iesje/matricula_engine/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config{
		addr: env.GetString("ADDR", ":8080"),
		db: dbConfig{
			addr:         env.GetString("DB_ADDR", ""),
			maxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 25),
			maxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 25),
			maxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		redisAddr:    env.GetString("REDIS_ADDR", ""),
		refdataTTL:   time.Duration(env.GetInt("REFDATA_TTL_MINUTES", 15)) * time.Minute,
		globalMaxCap: env.GetFloat("GLOBAL_MAX_CAP", 60),
	}

	appLogger := &logger.Logger{MinLevel: logger.LogLevel(env.GetInt("LOG_LEVEL", int(logger.LevelInfo)))}

	// The database is optional: without DB_ADDR every catalog lookup answers
	// from the static fallback tables.
	var provider refdata.Provider
	var storage *store.Storage
	if cfg.db.addr != "" {
		database, err := db.New(
			cfg.db.addr,
			cfg.db.maxOpenConns,
			cfg.db.maxIdleConns,
			cfg.db.maxIdleTime)

		if err != nil {
			log.Panic(err)
		}
		defer database.Close()
		log.Printf("Database connection pool established")

		storage = store.NewStorage(database)
		provider = storage
	} else {
		appLogger.Warn("main", "DB_ADDR não configurado, usando catálogos estáticos")
	}

	var cache refdata.Cache
	if cfg.redisAddr != "" {
		cache = refdata.NewRedisCache(cfg.redisAddr)
		log.Printf("Redis reference-data cache at %s", cfg.redisAddr)
	} else {
		cache = refdata.NewMemoryCache()
	}

	resolver := refdata.NewResolver(provider, cache, appLogger, cfg.refdataTTL)

	engineCfg := enrollment.DefaultConfig()
	engineCfg.GlobalMaxCap = cfg.globalMaxCap
	engine := enrollment.NewEngine(resolver, appLogger, engineCfg)

	app := &application{
		config: cfg,
		engine: engine,
		logger: appLogger,
		store:  storage,
	}

	mux := app.mount()

	log.Fatal(app.run(mux))
}
