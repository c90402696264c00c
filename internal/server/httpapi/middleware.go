package httpapi

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// versionMiddleware rejects requests whose path names any protocol
// version other than the one this binary was built for.
func (r *Router) versionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "version") != Version {
			writeMessage(w, http.StatusBadRequest, msgVersionWarning)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// authMiddleware guards every record route. The credential may arrive in
// a header or a cookie under the configured name; it must match the key
// cached at startup byte for byte and carry a valid signature of its own.
// A process that never obtained a key refuses all protected routes.
func (r *Router) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		presented := req.Header.Get(r.keyName)
		if presented == "" {
			if c, err := req.Cookie(r.keyName); err == nil {
				presented = c.Value
			}
		}
		if r.apiKey == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(r.apiKey)) != 1 ||
			!r.verifier.Verify(presented, r.secret) {
			writeMessage(w, http.StatusForbidden, msgBadCredentials)
			return
		}
		next.ServeHTTP(w, req)
	})
}
