package config

import (
	"github.com/starfield-blog/starfield/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Content   Content
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Content holds the content policy knobs.
type Content struct {
	// ModerateComments decides whether comment reads are limited to approved
	// entries. One flag drives every comment read path.
	ModerateComments bool

	// CounterRateLimit is the per-IP sustained rate (events per second) for
	// like and visit counters. Zero disables rate limiting entirely, which is
	// the default: double likes are tolerated at personal-blog scale.
	CounterRateLimit float64

	// CounterRateBurst is the per-IP burst size for like and visit counters.
	CounterRateBurst int
}
