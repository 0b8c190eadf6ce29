package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/across-relayer/api/handlers"
	"github.com/sprintertech/across-relayer/health"
)

func NewRouter(
	confirmationsHandler *handlers.ConfirmationsHandler,
	tokensHandler *handlers.TokensHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", health.HandleHealth).Methods("GET")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/confirmations", confirmationsHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/tokens", tokensHandler.HandleRequest).Methods("GET")
	return r
}

// Serve blocks until the context is cancelled and then shuts the server down.
func Serve(
	ctx context.Context,
	addr string,
	confirmationsHandler *handlers.ConfirmationsHandler,
	tokensHandler *handlers.TokensHandler,
) {
	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(confirmationsHandler, tokensHandler),
		ReadTimeout:       time.Second * 10,
		ReadHeaderTimeout: time.Second * 2,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msgf("Server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
