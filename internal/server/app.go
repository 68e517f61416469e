package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"masterchef-rewards/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

type Config struct {
	HttpPort string
	GrpcPort string
}

type App struct {
	httpServer   *http.Server
	grpcServer   *grpc.Server
	health       *health.Server
	grpcListener net.Listener
}

func New(cfg Config, httpHandler *gin.Engine, grpcServer *grpc.Server, hs *health.Server) (*App, error) {
	// HTTP Server
	httpSrv := &http.Server{
		Addr:              ":" + cfg.HttpPort,
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC Listener
	lis, err := net.Listen("tcp", ":"+cfg.GrpcPort)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on grpc port %s: %w", cfg.GrpcPort, err)
	}

	return &App{
		httpServer:   httpSrv,
		grpcServer:   grpcServer,
		health:       hs,
		grpcListener: lis,
	}, nil
}

// Run 启动服务并阻塞，直到收到关闭信号
func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	a.RunContext(ctx)
}

// RunContext 与 Run 相同，ctx 结束即开始优雅关闭
func (a *App) RunContext(ctx context.Context) {
	// 1. Start HTTP
	go func() {
		logger.Info("Starting HTTP Server", zap.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP Server failure", zap.Error(err))
		}
	}()

	// 2. Start gRPC
	go func() {
		logger.Info("Starting gRPC Server", zap.String("addr", a.grpcListener.Addr().String()))
		if err := a.grpcServer.Serve(a.grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Fatal("gRPC Server failure", zap.Error(err))
		}
	}()

	// 3. Blocking
	<-ctx.Done()
	logger.Info("⚠️  Shutting down server...")

	// 4. Graceful Shutdown
	if a.health != nil {
		a.health.Shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	a.grpcServer.GracefulStop()
	logger.Info("Server exited properly")
}

// GRPCAddr 实际监听地址 (端口为 0 时由系统分配)
func (a *App) GRPCAddr() string {
	return a.grpcListener.Addr().String()
}
