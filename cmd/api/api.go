package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paytrack/docs" //this is required to generate swagger docs
	"paytrack/internal/auth"
	"paytrack/internal/bookkeeping"
	"paytrack/internal/metrics"
	"paytrack/internal/moderation"
	"paytrack/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type application struct {
	config      config
	db          pinger
	logger      *zap.SugaredLogger
	gateway     *auth.Gateway
	moderation  *moderation.Service
	bookkeeping *bookkeeping.Service
	rateLimiter ratelimiter.Limiter
	metrics     *metrics.Collector
	registry    *prometheus.Registry
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	mail        mailConfig
	frontendURL string
	auth        authConfig
	rateLimiter ratelimiter.Config
	corsOrigins []string
	logLevel    string
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret string
	exp    time.Duration
	iss    string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	fromEmail string
	smtp      smtpConfig
}

type smtpConfig struct {
	host     string
	port     int
	username string
	password string
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
		r.With(app.BasicAuthMiddleware()).Get("/metrics", metrics.Handler(app.registry).ServeHTTP)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.With(app.RateLimiterMiddleware).Post("/register", app.registerHandler)
			r.With(app.RateLimiterMiddleware).Post("/login", app.loginHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Get("/verify", app.verifyHandler)
				r.Post("/change-password", app.changePasswordHandler)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.RequireAdmin)

			r.Get("/users", app.listAccountsHandler)
			r.Get("/stats", app.accountStatsHandler)
			r.Put("/users/{userID}/approve", app.approveAccountHandler)
			r.Put("/users/{userID}/reject", app.rejectAccountHandler)
			r.Delete("/users/{userID}", app.deleteAccountHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", app.listCustomersHandler)
				r.Post("/", app.createCustomerHandler)

				r.Route("/{customerID}", func(r chi.Router) {
					r.Get("/", app.getCustomerHandler)
					r.Put("/", app.updateCustomerHandler)
					r.Delete("/", app.deleteCustomerHandler)
					r.Get("/transactions", app.customerTransactionsHandler)
				})
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", app.listTransactionsHandler)
				r.Post("/", app.createTransactionHandler)

				r.Route("/{transactionID}", func(r chi.Router) {
					r.Get("/", app.getTransactionHandler)
					r.Put("/", app.updateTransactionHandler)
					r.Delete("/", app.deleteTransactionHandler)
				})
			})

			r.Get("/reminders", app.remindersHandler)
			r.Get("/dashboard", app.dashboardHandler)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	// pending approval notices
	app.moderation.Wait()

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
