package httpx

import "net/http"

// Middleware is a request-transforming stage: it either passes control to
// next (possibly with an enriched context) or short-circuits with a response.
type Middleware func(http.Handler) http.Handler

// Chain wraps h with the given middlewares. The first middleware is the
// outermost, so Chain(h, a, b) runs a, then b, then h.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
