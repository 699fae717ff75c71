package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BreweryStats/configs"
	"droscher.com/BreweryStats/pkg/repository"
	"droscher.com/BreweryStats/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".BreweryStats.toml" help:"Path to config file"          short:"c"`
	EnvFile    string `default:".env"               help:"Optional dotenv file to load" short:"e"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logger, err := ctx.Logger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	if err = godotenv.Load(s.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load env file", zap.String("file", s.EnvFile), zap.Error(err))
	}

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(server.NewHandler(repo, logger), conf.Server.AllowedOrigins)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("starting server", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-type",
			"origin",
			"referer",
			"user-agent",
			"x-request-id",
		},
		ExposedHeaders: []string{
			"x-request-id",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}
