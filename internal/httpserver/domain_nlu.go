package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-assistant-nlu/internal/middleware"
	nluHTTP "voice-assistant-nlu/internal/nlu/delivery/http"
	nluRepo "voice-assistant-nlu/internal/nlu/repository/gocache"
	nluUC "voice-assistant-nlu/internal/nlu/usecase"
)

// setupNLUDomain initializes the NLU domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l, ...)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupNLUDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository: in-memory session store with idle expiry
	store := nluRepo.New(srv.l, srv.engine.SessionTTL, srv.engine.SweepInterval)

	// 2. UseCase
	uc := nluUC.New(srv.l, srv.registry, store)

	// 3. HTTP Handler
	h := nluHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/process/text, /api/v1/domains,
	//    /api/v1/sessions/:domain
	nluHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "NLU domain registered with %d domain schemas", srv.registry.Count())
	return nil
}
