package internal

import (
	"agentcrm/internal/controllers"
	"agentcrm/internal/providers"
	"agentcrm/internal/services"
	"agentcrm/internal/structures"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	WebServer *http.Server
	logger    providers.Logger
}

// NewHandler assembles the HTTP surface: API routes behind logging and
// metrics middleware, /metrics when enabled, and the static UI or a JSON 404.
func NewHandler(router providers.RouterProviderInterface, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) http.Handler {
	routes := router.GetRoutes()
	endpoints := make([]string, 0, len(routes))
	apiMux := http.NewServeMux()
	for _, route := range routes {
		apiMux.Handle(route.Url, route.Handler)
		endpoints = append(endpoints, route.Url)
	}
	if conf.WebServer.StaticDir != "" {
		apiMux.Handle("/", controllers.NewStaticController(conf.WebServer.StaticDir))
	} else {
		apiMux.HandleFunc("/", controllers.NotFound)
	}

	instrumented := providers.MetricsMiddleware(metrics, endpoints, providers.LoggingMiddleware(logger, apiMux))

	mux := http.NewServeMux()
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumented)
	return mux
}

func NewApp(service services.CrmServiceInterface, handler http.Handler, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	if err := service.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	if conf.Reset {
		logger.Warnf(providers.TypeApp, "Resetting data to seed snapshot")
		if err := service.Reset(); err != nil {
			return nil, fmt.Errorf("reset store: %w", err)
		}
	}
	metrics.SetRecordsTotal("contacts", service.ContactCount())
	metrics.SetRecordsTotal("deals", service.DealCount())
	logger.Infof(providers.TypeApp, "Store ready: %d clients, %d deals (%s)", service.ContactCount(), service.DealCount(), conf.Persistence.FilePath)

	return &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      handler,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}, nil
}

// Run serves until SIGINT/SIGTERM or a listener error, then shuts down
// gracefully.
func (a *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		a.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", a.WebServer.Addr)
		if err := a.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		a.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.WebServer.Shutdown(ctx); err != nil {
		return err
	}
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}

func (a *App) Close() {
	a.logger.Close()
}
