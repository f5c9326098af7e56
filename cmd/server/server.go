package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexedwards/scs/v2"
	"github.com/ardanlabs/conf/v3"
	"github.com/irsalhamdi/harmoni-music/api"
	"github.com/irsalhamdi/harmoni-music/blob"
	"github.com/irsalhamdi/harmoni-music/config"
	"github.com/irsalhamdi/harmoni-music/core/auth"
	"github.com/irsalhamdi/harmoni-music/core/cart"
	"github.com/irsalhamdi/harmoni-music/core/catalog"
	"github.com/irsalhamdi/harmoni-music/core/course"
	"github.com/irsalhamdi/harmoni-music/core/product"
	"github.com/irsalhamdi/harmoni-music/core/user"
	"github.com/irsalhamdi/harmoni-music/database"
	"github.com/irsalhamdi/harmoni-music/random"
	"github.com/irsalhamdi/harmoni-music/rate"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := Run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func Run(logger *logrus.Logger) error {
	logger.Infof("starting server")
	defer logger.Info("shutdown complete")

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	const prefix = "HARMONI"
	var cfg config.Config
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	logger.Infof("startup config:\n%s", out)

	lw := logger.Writer()
	defer lw.Close()
	errLog := log.New(lw, "", 0)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := database.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open db connection: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	admin, created, err := user.EnsureAdmin(ctx, db, cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.WithField("email", admin.Email).Info("admin account created")
	}

	blobs := blob.NewDB(db)

	courses := catalog.New(ctx, catalog.Config[course.Course]{
		Log:      logger,
		Blobs:    blobs,
		Key:      "courses",
		Defaults: course.Defaults(),
		Strict:   cfg.Catalog.StrictNotFound,
	})

	products := catalog.New(ctx, catalog.Config[product.Product]{
		Log:      logger,
		Blobs:    blobs,
		Key:      "products",
		Defaults: product.Defaults(),
		Strict:   cfg.Catalog.StrictNotFound,
	})

	carts := cart.NewEngine(logger, blobs, cfg.Catalog.StrictNotFound)

	secret := []byte(cfg.Auth.JWTSecret)
	if len(secret) == 0 {
		s, err := random.StringSecure(64)
		if err != nil {
			return fmt.Errorf("generating token secret: %w", err)
		}
		secret = []byte(s)
		logger.Warn("no token secret configured, tokens will not survive a restart")
	}
	tokens := auth.NewTokens(secret, cfg.Auth.TokenTimeout)

	limiter := rate.NewLimiter(ctx, cfg.Rate.LoginBurst, cfg.Rate.Expiry, rate.Every(cfg.Rate.LoginInterval))

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.Auth.SessionTime

	mux := api.APIMux(api.APIConfig{
		CorsOrigin: cfg.Cors.Origin,
		Log:        logger,
		DB:         db,
		Session:    sessionManager,
		Tokens:     tokens,
		Limiter:    limiter,
		Courses:    courses,
		Products:   products,
		Carts:      carts,
		ClearCart:  cfg.Checkout.ClearCart,
	})

	api := http.Server{
		Handler:      mux,
		Addr:         cfg.Web.Address,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     errLog,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Infof("starting api router at %s", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("shutting down: signal %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
