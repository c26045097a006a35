// Package rest exposes the development backend over HTTP with chi.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/logging"
	"github.com/dmitrijs2005/voltshop/internal/server/catalog"
	"github.com/dmitrijs2005/voltshop/internal/server/messages"
	"github.com/dmitrijs2005/voltshop/internal/server/orders"
	"github.com/dmitrijs2005/voltshop/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	basePath string
	logger   logging.Logger
	users    *users.Service
	catalog  *catalog.Service
	orders   *orders.Service
	messages *messages.Service
}

func NewServer(address, basePath string, l logging.Logger, us *users.Service, cs *catalog.Service, ords *orders.Service, ms *messages.Service) *Server {
	return &Server{
		address:  address,
		basePath: basePath,
		logger:   l.With("module", "rest_server"),
		users:    us,
		catalog:  cs,
		orders:   ords,
		messages: ms,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting REST server", "address", s.address, "base_path", s.basePath)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
