package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Savin-AS94/hw05-final/cache"
	"github.com/Savin-AS94/hw05-final/config"
	"github.com/Savin-AS94/hw05-final/events"
	"github.com/Savin-AS94/hw05-final/routes"
	"github.com/Savin-AS94/hw05-final/storage"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	rootCmd := &cobra.Command{
		Use:   "yatube",
		Short: "Yatube blogging platform",
	}
	rootCmd.AddCommand(serveCmd(), cacheCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db := config.InitDB(cfg)

			pageCache := newCacheStore(cfg)
			images, mediaRoot := newImageStore(cfg)

			r := gin.Default()
			routes.SetupRoutes(r, routes.Deps{
				DB:         db,
				JWTSecret:  cfg.JWTSecret,
				PageSize:   cfg.PageSize,
				CacheTTL:   cfg.CacheTTL,
				Cache:      pageCache,
				Images:     images,
				Events:     events.Connect(cfg.NATSURL),
				AdminToken: cfg.AdminToken,
				MediaRoot:  mediaRoot,
			})

			log.Info().Str("port", cfg.Port).Msg("starting server")
			return r.Run(":" + cfg.Port)
		},
	}
}

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Page cache operations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Drop every cached page from redis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			store, err := cache.NewRedis(cfg.RedisAddr, cfg.RedisPass)
			if err != nil {
				return err
			}
			if err := store.Flush(context.Background()); err != nil {
				return err
			}
			log.Info().Msg("page cache flushed")
			return nil
		},
	})
	return cmd
}

func newCacheStore(cfg *config.Config) cache.Store {
	if cfg.RedisAddr == "" {
		return cache.NewMemory()
	}
	store, err := cache.NewRedis(cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-memory page cache")
		return cache.NewMemory()
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("redis page cache enabled")
	return store
}

// newImageStore picks R2 when configured, local disk otherwise. The returned
// media root is empty for R2 since the bucket serves its own URLs.
func newImageStore(cfg *config.Config) (storage.ImageStore, string) {
	if r2 := config.GetR2Config(); r2.AccountID != "" {
		return storage.NewR2(r2), ""
	}
	return storage.NewLocal(cfg.MediaRoot), cfg.MediaRoot
}
