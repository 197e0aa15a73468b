package http_server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"auctionhub/internal/http/auctionhandler"
	"auctionhub/internal/http/userhandler"
	"auctionhub/internal/services/auction"
	"auctionhub/internal/services/identity"
	"auctionhub/internal/upload"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abrar71/swaggerfilesv2" // swagger embed files
)

type httpServer struct {
	listenPort      uint16
	srv             http.Server
	ln              net.Listener
	auctionService  auction.IAuctionService
	identityService identity.IIdentityService
	uploads         *upload.Saver
}

func NewHttpServer(listenPort uint16,
	auctionService auction.IAuctionService,
	identityService identity.IIdentityService,
	uploads *upload.Saver) *httpServer {
	return &httpServer{
		listenPort:      listenPort,
		auctionService:  auctionService,
		identityService: identityService,
		uploads:         uploads,
	}
}

func (h *httpServer) Start() error {
	var err error
	listenAddr := fmt.Sprintf(":%d", h.listenPort)
	h.ln, err = net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	routerEngine := gin.New()

	// Swagger UI and API specs
	routerEngine.StaticFS("/swagger-apis", http.FS(swaggerfilesv2.FS))
	routerEngine.Static("/api-specs", "api_specs")

	// Uploaded auction images
	routerEngine.Static(upload.PublicPrefix, h.uploads.Dir)

	routerEngine.Use(ginzap.Ginzap(zap.L(), time.RFC3339, true))
	routerEngine.Use(ginzap.RecoveryWithZap(zap.L(), true))

	// REST API
	auctionhandler.New(h.auctionService, h.uploads).Register(routerEngine)
	userhandler.New(h.identityService).Register(routerEngine)

	h.srv = http.Server{
		Handler: routerEngine,
	}

	return h.srv.Serve(h.ln)
}

// Dispose gracefully shuts the HTTP server down.
// It waits up to 10 s for in-flight requests to finish.
func (h *httpServer) Dispose() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.srv.Shutdown(ctx); err != nil {
		zap.L().Error("http_dispose", zap.Error(err))
		return err // e.g. active conns didn't finish in time
	}
	return nil
}
