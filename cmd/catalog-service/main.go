// @title        Catalog API
// @version      1.0
// @description  Storefront product listings: category, brand and price facets, sorting and paging.
// @host         localhost:8081
// @BasePath     /
// @schemes      http
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/MikeMC777/catalogo-ecom/docs"
	"github.com/MikeMC777/catalogo-ecom/internal/catalog"
	"github.com/MikeMC777/catalogo-ecom/internal/config"
	"github.com/MikeMC777/catalogo-ecom/internal/httpx"
	"github.com/MikeMC777/catalogo-ecom/internal/seed"
)

// catalogService is the name reported by the gRPC health server.
const catalogService = "catalog.Catalog"

func openStore(ctx context.Context, cfg config.Config) (catalog.Store, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Printf("[catalog] using in-memory store with demo catalog")
		return catalog.NewMemStore(seed.Demo()), func() {}, nil
	}
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return catalog.NewPGRepo(pool), pool.Close, nil
}

func newRouter(svc *catalog.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	registerRoutes(r, svc)
	return r
}

func newHealthServer() (*grpc.Server, *health.Server) {
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus(catalogService, healthpb.HealthCheckResponse_SERVING)
	return gs, hs
}

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("[catalog] open store: %v", err)
	}
	defer closeStore()

	svc := catalog.NewService(store, catalog.Options{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
		SnapshotReads:   cfg.SnapshotReads,
	})

	// gRPC: health only; listing is served over HTTP.
	l, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("[grpc] listen %s: %v", cfg.GRPCAddr, err)
	}
	gs, hs := newHealthServer()
	go func() {
		log.Printf("[grpc] health listening on %s", cfg.GRPCAddr)
		if err := gs.Serve(l); err != nil {
			log.Printf("[grpc] serve: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(svc),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("catalog-service listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[http] serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[catalog] shutting down")
	hs.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown: %v", err)
	}
	gs.GracefulStop()
}
