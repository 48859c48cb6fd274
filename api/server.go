// Package api はプロジェクトとレポートのREST APIサーバー実装を提供します。
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stsysd/dpsapi/config"
	"github.com/stsysd/dpsapi/store"
	"go.uber.org/zap"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	router  *http.ServeMux
	handler http.Handler
	store   store.Store
	config  *config.Config
	logger  *zap.Logger
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(store store.Store, config *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		router: http.NewServeMux(),
		store:  store,
		config: config,
		logger: logger,
	}
	s.routes()
	s.handler = s.requestIDMiddleware(s.accessLogMiddleware(s.jsonErrorMiddleware(s.router)))
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	// 認証不要のエンドポイント
	s.router.HandleFunc("GET /{$}", s.handleRoot)
	s.router.HandleFunc("GET /ping", s.handlePing)
	s.router.Handle("GET /metrics", promhttp.Handler())

	// すべての保護されたエンドポイントをまずセキュアなルータに登録
	securedHandler := http.NewServeMux()

	// Project endpoints
	securedHandler.HandleFunc("GET /project", s.handleListProjects)
	securedHandler.HandleFunc("POST /project", s.handleCreateProject)
	securedHandler.HandleFunc("GET /project/{id}", s.handleGetProject)
	securedHandler.HandleFunc("PUT /project/{id}", s.handleUpdateProject)
	securedHandler.HandleFunc("PATCH /project/{id}", s.handleUpdateProject)
	securedHandler.HandleFunc("DELETE /project/{id}", s.handleDeleteProject)

	// Report endpoints
	securedHandler.HandleFunc("GET /report", s.handleListReports)
	securedHandler.HandleFunc("POST /report", s.handleCreateReport)
	securedHandler.HandleFunc("GET /report/repeated-words", s.handleRepeatedWordReports)
	securedHandler.HandleFunc("GET /report/project/{project_id}", s.handleListReportsByProject)
	securedHandler.HandleFunc("GET /report/{id}", s.handleGetReport)
	securedHandler.HandleFunc("PATCH /report/{id}", s.handleUpdateReport)
	securedHandler.HandleFunc("DELETE /report/{id}", s.handleDeleteReport)

	// 認証ミドルウェアを適用し、メインルータにマウント
	secured := s.authMiddleware(securedHandler)
	s.router.Handle("/project", secured)
	s.router.Handle("/project/", secured)
	s.router.Handle("/report", secured)
	s.router.Handle("/report/", secured)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run はサーバーを指定されたアドレスで起動し、ctxがキャンセルされるとグレースフルに停止します。
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve は与えられたリスナーでリクエストを受け付けます。
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		ErrorLog:     zap.NewStdLog(s.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.config.ShutdownTimeout > 0 {
		return s.config.ShutdownTimeout
	}
	return 5 * time.Second
}
