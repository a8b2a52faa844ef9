package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alorahq/marketplace/internal/auth"
)

func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// Mount registers every handler: public routes first, then the token-guarded
// group, then static image serving.
func Mount(r *chi.Mux, tokens *auth.Tokens, ih *IdentityHandler, ch *CatalogHandler, oh *OrdersHandler, uploadDir string) {
	ih.Register(r)
	ch.Register(r)

	r.Group(func(pr chi.Router) {
		pr.Use(Authenticator(tokens))
		ih.RegisterProtected(pr)
		ch.RegisterProtected(pr)
		oh.Register(pr)
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
}
