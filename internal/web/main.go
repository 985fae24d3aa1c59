// Package web implements the JSON REST service of starfield.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	accesslog "github.com/starfield-blog/starfield/internal/logger/adapter/fiber"
	"github.com/starfield-blog/starfield/internal/web/handler"
	"github.com/starfield-blog/starfield/internal/web/handler/comments"
	"github.com/starfield-blog/starfield/internal/web/handler/guestbook"
	"github.com/starfield-blog/starfield/internal/web/handler/health"
	"github.com/starfield-blog/starfield/internal/web/handler/links"
	"github.com/starfield-blog/starfield/internal/web/handler/notes"
	"github.com/starfield-blog/starfield/internal/web/handler/playlist"
	"github.com/starfield-blog/starfield/internal/web/handler/posts"
	"github.com/starfield-blog/starfield/internal/web/handler/settings"
	"github.com/starfield-blog/starfield/internal/web/handler/stats"
	"github.com/starfield-blog/starfield/internal/web/middleware/ratelimit"
)

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	alive atomic.Bool
	db    *gorm.DB
}

// Port returns the configured listening port.
func (s *Service) Port() int {
	return s.cfg.Webserver.Port
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of starfield.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: flip the alive flag so /health
	// returns 503 while the LB removes this instance from active targets.
	log.Info().Msgf(
		"graceful shutdown: return 503 on /health for %d seconds to let the LB drain this instance",
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "starfield",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// the API is consumed directly from the browser, CORS stays fully open
	app.Use(cors.New())

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: health.Path,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	service.alive.Store(true)

	// per-IP throttle for the abuse-prone counter endpoints, disabled by default
	counterLimit := ratelimit.New(cfg.Content.CounterRateLimit, cfg.Content.CounterRateBurst)

	// init handlers (they register their own routes)
	mustInit(posts.Handler.Init(app, cfg, db, counterLimit))
	mustInit(notes.Handler.Init(app, cfg, db, counterLimit))
	mustInit(comments.Handler.Init(app, cfg, db, counterLimit))
	mustInit(guestbook.Handler.Init(app, cfg, db))
	mustInit(links.Handler.Init(app, cfg, db))
	mustInit(playlist.Handler.Init(app, cfg, db))
	mustInit(settings.Handler.Init(app, cfg, db))
	mustInit(stats.Handler.Init(app, cfg, db, counterLimit))
	mustInit(health.Handler.Init(app, cfg, &service.alive))

	return service
}

func mustInit(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg(handler.ErrNilACDFatalLogMsg)
	}
}
