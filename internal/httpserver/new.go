package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	appConfig "voice-assistant-nlu/config"
	"voice-assistant-nlu/internal/schema"
	"voice-assistant-nlu/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// NLU domain
	registry  *schema.Registry
	engine    appConfig.EngineConfig
	rateLimit appConfig.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// NLU domain
	Registry  *schema.Registry
	Engine    appConfig.EngineConfig
	RateLimit appConfig.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		registry:    cfg.Registry,
		engine:      cfg.Engine,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.registry == nil {
		return errors.New("domain registry is required")
	}
	return nil
}
