package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/nextgen-academy/academy-api/internal/authgate"
)

// SessionCookieName is the cookie carrying the back-office session id.
const SessionCookieName = "session_id"

// AdminLoginPath is where unauthenticated browser requests to the admin area
// are redirected.
const AdminLoginPath = "/admin-login"

// guardReadyTimeout bounds how long a request waits for a freshly created
// gate to finish its first evaluation.
const guardReadyTimeout = 5 * time.Second

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// browserRequestKey is an unexported context key type for browser request detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that detects browser requests vs API
// requests, so guards can choose between redirects and JSON errors.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isBrowser := isBrowserRequest(r)
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if val := r.Context().Value(browserRequestKey{}); val != nil {
		if isBrowser, ok := val.(bool); ok {
			return isBrowser
		}
	}
	// Fallback to direct detection if middleware wasn't used
	return isBrowserRequest(r)
}

// isBrowserRequest determines if a request is from a browser:
// API routes under /api/ and image files are never browser requests; for the
// rest the Accept header decides.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	if strings.HasPrefix(r.URL.Path, "/images/") {
		return false
	}

	accept := r.Header.Get("Accept")
	if accept == "" {
		// No Accept header, assume browser for non-API routes
		return true
	}
	return strings.Contains(accept, "text/html")
}

// RequireAdmin returns the admin-area guard. Each request resolves its
// session's gate and acts on the derived status:
//
//   - Loading: wait for the gate's first evaluation; never decide on Loading.
//   - Unauthenticated: redirect browsers to the admin login page, answer API
//     requests with 401, and release the gate so unknown cookies cannot
//     accumulate registry entries.
//   - Authorized: re-check that the session still exists in the store
//     (expiry emits no change event), then attach the verified identity and
//     pass through.
func RequireAdmin(gates *authgate.Registry, loginPath string, logger *slog.Logger) func(http.Handler) http.Handler {
	if loginPath == "" {
		loginPath = AdminLoginPath
	}
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionIDFromRequest(r)
			if sessionID == "" {
				denyUnauthenticated(w, r, loginPath)
				return
			}

			gate := gates.Acquire(r.Context(), sessionID)

			waitCtx, cancel := context.WithTimeout(r.Context(), guardReadyTimeout)
			err := gate.WaitReady(waitCtx)
			cancel()
			if err != nil {
				// Still loading: the guard must not answer the authorization
				// question yet, so ask the client to retry.
				logger.WarnContext(r.Context(), "admin gate not ready", "error", err)
				w.Header().Set("Retry-After", "1")
				WriteError(w, ErrorParams{
					Code:    http.StatusServiceUnavailable,
					ErrCode: "authorization_pending",
					Err:     errors.New("authorization check in progress, retry shortly"),
				})
				return
			}

			gate.Revalidate(r.Context())

			status, identity := gate.Status()
			if status != authgate.StatusAuthorized {
				gates.Release(sessionID)
				denyUnauthenticated(w, r, loginPath)
				return
			}

			ctx := SetIdentityInContext(r.Context(), identity)
			ctx = SetSessionIDInContext(ctx, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionIDFromRequest reads the session cookie, returning "" when absent.
func sessionIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// denyUnauthenticated redirects browsers to the login page and answers API
// requests with a 401 JSON body.
func denyUnauthenticated(w http.ResponseWriter, r *http.Request, loginPath string) {
	if IsBrowserRequest(r) {
		redirectParam := url.QueryEscape(safeRedirectPath(r.URL.RequestURI()))
		http.Redirect(w, r, loginPath+"?redirect_uri="+redirectParam, http.StatusSeeOther)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}
