// Package httpapi exposes the public JSON/HTTP surface of the server:
// registration, login and the token-protected weather and history endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/weatherhub/internal/logging"
	"github.com/dmitrijs2005/weatherhub/internal/server/services"
)

type HTTPServer struct {
	address   string
	users     *services.UserService
	weather   *services.WeatherService
	logger    logging.Logger
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, ws *services.WeatherService, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		weather:   ws,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Handler builds the route table. Protected routes go through the token
// middleware; everything goes through request-id logging.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", s.registerHandler)
	mux.HandleFunc("POST /auth/login", s.loginHandler)
	mux.Handle("GET /api/weather", s.requireToken(http.HandlerFunc(s.weatherHandler)))
	mux.Handle("GET /api/history", s.requireToken(http.HandlerFunc(s.historyHandler)))

	return s.withRequestID(mux)
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
