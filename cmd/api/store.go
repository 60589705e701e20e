package main

import (
	"context"

	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/adapters/storage/mongo"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/router"
)

// openStore: Mongo si está configurado, si no Postgres (DB_DSN), si no memoria.
func openStore(ctx context.Context, cfg config.Config, log logger.Logger) (router.Store, func(), error) {
	if uri := cfg.MongoConnString(); uri != "" {
		client, err := mongo.Open(ctx, uri)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }

		store := mongo.NewStore(client.Database(cfg.MongoDatabase), cfg.MongoTransactions)
		if err := store.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
		if cfg.MigrateOnStart {
			n, err := store.MigrateAdoptionStatus(ctx)
			if err != nil {
				closeFn()
				return nil, nil, err
			}
			log.Info("adoption status migrated", logger.Fields{"updated": n})
		}

		log.Info("store ready", logger.Fields{"backend": "mongo", "database": cfg.MongoDatabase, "transactions": cfg.MongoTransactions})
		return store, closeFn, nil
	}

	if cfg.PostgresDSN != "" {
		db, err := pg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = db.Close() }

		if cfg.MigrateOnStart {
			if err := pg.EnsureSchema(ctx, db); err != nil {
				closeFn()
				return nil, nil, err
			}
		}

		log.Info("store ready", logger.Fields{"backend": "postgres"})
		return pg.NewStore(db), closeFn, nil
	}

	log.Warn("no database configured: using in-memory store", nil)
	return mem.NewStore(), func() {}, nil
}
