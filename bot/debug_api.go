package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"spectrum/bot/common"
	"spectrum/domain/interfaces"
	"spectrum/domain/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// debugRequester is the audit identity recorded for debug API lookups
const debugRequester = "debug-api"

// Pinger reports whether a backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// DebugResponse represents the response from a debug endpoint
type DebugResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewDebugRouter builds the debug/health HTTP API
func NewDebugRouter(lookuper common.Lookuper, audit interfaces.AuditPublisher, pinger Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if pinger != nil {
			if err := pinger.Ping(ctx); err != nil {
				log.WithError(err).Warn("Readiness check failed")
				respondWithError(w, "database unreachable", http.StatusServiceUnavailable)
				return
			}
		}
		respondWithSuccess(w, "ready", nil)
	})

	r.Route("/debug", func(r chi.Router) {
		r.Get("/lookup/{view}/{identifier}", func(w http.ResponseWriter, r *http.Request) {
			view := services.View(chi.URLParam(r, "view"))
			switch view {
			case services.ViewBasic, services.ViewInventory, services.ViewRecord, services.ViewLive:
			default:
				respondWithError(w, fmt.Sprintf("unknown view: %s", view), http.StatusBadRequest)
				return
			}
			debugLookup(w, r, lookuper, audit, view, chi.URLParam(r, "identifier"))
		})

		r.Get("/live/{id}", func(w http.ResponseWriter, r *http.Request) {
			debugLookup(w, r, lookuper, audit, services.ViewLive, chi.URLParam(r, "id"))
		})
	})

	return r
}

func debugLookup(w http.ResponseWriter, r *http.Request, lookuper common.Lookuper, audit interfaces.AuditPublisher, view services.View, identifier string) {
	result, err := common.PerformLookup(r.Context(), lookuper, audit, view, identifier, debugRequester, "")
	if err != nil {
		var cmdErr *services.CommandError
		if errors.As(err, &cmdErr) {
			writeJSON(w, commandErrorStatus(cmdErr.Kind), DebugResponse{
				Success: false,
				Message: common.CommandErrorMessage(cmdErr.Kind),
				Error:   cmdErr.Kind.String(),
			})
			return
		}
		respondWithError(w, "lookup failed", http.StatusInternalServerError)
		return
	}
	respondWithSuccess(w, "", result)
}

// commandErrorStatus maps a lookup failure to an HTTP status
func commandErrorStatus(kind services.CommandErrorKind) int {
	switch kind {
	case services.KindInvalidIdentifierFormat:
		return http.StatusBadRequest
	case services.KindPlayerNotFound:
		return http.StatusNotFound
	case services.KindUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}

// StartDebugAPI starts the debug API on localhost in the background
func (b *Bot) StartDebugAPI(port int) error {
	server := &http.Server{
		Addr:         fmt.Sprintf("127.0.0.1:%d", port),
		Handler:      NewDebugRouter(b.lookuper, b.audit, b.pinger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}

	go func() {
		log.Infof("Debug API listening on %s", server.Addr)
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Errorf("Debug API server error: %v", err)
		}
	}()

	b.debugServer = server
	return nil
}

func respondWithSuccess(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, DebugResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondWithError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, DebugResponse{
		Success: false,
		Error:   message,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body DebugResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("Failed to encode debug response: %v", err)
	}
}
