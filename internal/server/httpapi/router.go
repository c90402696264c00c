package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"taskmaster/internal/server/config"
	"taskmaster/internal/server/service"
	"taskmaster/internal/server/store"
	"taskmaster/internal/shared/token"
)

// Version is the protocol version clients must name in the request path.
const Version = "v1"

type Router struct {
	gateway  *store.Gateway
	broker   *service.KeyBroker
	verifier *token.Verifier
	logger   *log.Logger
	secret   []byte
	keyName  string

	// apiKey is resolved once at startup and held for the process
	// lifetime; key rotation needs a restart.
	apiKey string
}

func NewRouter(gateway *store.Gateway, broker *service.KeyBroker, cfg config.Config, apiKey string, logger *log.Logger) http.Handler {
	r := &Router{
		gateway:  gateway,
		broker:   broker,
		verifier: token.NewVerifier(cfg.AuthSubject, logger),
		logger:   logger,
		secret:   []byte(cfg.Secret),
		keyName:  cfg.KeyName,
		apiKey:   apiKey,
	}
	mux := chi.NewRouter()

	mux.Get("/health", r.handleHealth)

	mux.Route("/api/{version}", func(vr chi.Router) {
		vr.Use(r.versionMiddleware)
		vr.Get("/connection", r.handleConnection)
		vr.Post("/auth/key", r.handleKeyExchange)

		vr.Group(func(pr chi.Router) {
			pr.Use(r.authMiddleware)
			pr.Get("/day", r.handleListDays)
			pr.Post("/day", r.handleCreateDay)
			pr.Get("/day/{date}", r.handleGetDay)
			pr.Put("/day/{date}", r.handleUpdateDay)
			pr.Delete("/day/{date}", r.handleDeleteDay)
			pr.Get("/day/{date}/latest", r.handleLatestTask)
			pr.Delete("/day/{date}/task/{taskID}", r.handleDeleteTask)
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeData wraps a payload in the {"status":..., "data":...} envelope the
// GET endpoints respond with.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{"status": status, "data": data})
}
