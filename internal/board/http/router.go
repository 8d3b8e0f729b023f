package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/pinwall/noticeboard/internal/board/service"
	"github.com/pinwall/noticeboard/internal/board/store"
	"github.com/pinwall/noticeboard/pkg/httpx"
	"github.com/pinwall/noticeboard/pkg/jwtx"
	"github.com/pinwall/noticeboard/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	env          string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AccountService *service.AccountService
	NoticeService  *service.NoticeService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion, env string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		env:          env,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerNotices()
	r.registerSystem()
}

// authn builds the bearer-token middleware backed by the credential store.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, &storeResolver{store: r.store})
}

func (r *Router) registerUsers() {
	h := &UsersHandler{AccountService: r.AccountService}

	// Credential endpoints get the strict per-IP limit (brute force and
	// mass-registration prevention).
	r.Mux.Handle("POST /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /api/users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /api/users - protected listing
	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerNotices() {
	h := &NoticesHandler{NoticeService: r.NoticeService}

	// Public reads
	r.Mux.Handle("GET /api/notices",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/notices/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Protected writes: authentication first, then body validation inside
	// the handler.
	r.Mux.Handle("POST /api/notices",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/notices/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /api/health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion, r.env, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// JSON 404 for everything else under /api/.
	r.Mux.HandleFunc("/api/", func(w http.ResponseWriter, req *http.Request) {
		httpx.NewError(http.StatusNotFound, "API endpoint not found",
			"The requested endpoint "+req.Method+" "+req.URL.Path+" does not exist").Write(w)
	})
}

// storeResolver adapts the credential store to httpx.UserResolver so the
// auth middleware can re-resolve token subjects without pkg/httpx knowing
// about the storage layer.
type storeResolver struct {
	store store.Store
}

func (sr *storeResolver) ResolveUser(ctx context.Context, userID string) (httpx.AuthUser, error) {
	u, err := sr.store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httpx.AuthUser{}, httpx.ErrUserNotFound
		}
		return httpx.AuthUser{}, err
	}
	return httpx.AuthUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}, nil
}
