package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName    = "tracking_session"
	sessionUserID  = "user_id"
	sessionState   = "oauth_state"
	sessionNonce   = "oauth_nonce"
	userContextKey = "user"
)

// Session backends.
const (
	SessionFilesystem = "filesystem"
	SessionCookie     = "cookie"
)

// SessionOptions selects and configures the session backend.
type SessionOptions struct {
	Type   string
	Dir    string
	Secret []byte
	Secure bool
	MaxAge int
}

// NewSessionStore builds the gorilla/sessions store. Without a secret a
// random key is generated, which signs every existing session out on restart.
func NewSessionStore(opts SessionOptions) (sessions.Store, error) {
	secret := opts.Secret
	if len(secret) == 0 {
		secret = securecookie.GenerateRandomKey(32)
		if secret == nil {
			return nil, errors.New("generate session key")
		}
	}

	options := &sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if options.MaxAge == 0 {
		options.MaxAge = 7 * 24 * 60 * 60
	}

	switch strings.ToLower(opts.Type) {
	case "", SessionFilesystem:
		dir := opts.Dir
		if dir == "" {
			dir = ".sessions"
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("session dir: %w", err)
		}
		store := sessions.NewFilesystemStore(dir, secret)
		store.Options = options
		// ID tokens and the OAuth flow state do not fit the 4096 byte default.
		store.MaxLength(64 * 1024)
		return store, nil
	case SessionCookie:
		store := sessions.NewCookieStore(secret)
		store.Options = options
		return store, nil
	default:
		return nil, errs.NewValueIsInvalidError("SESSION_TYPE")
	}
}

// UserLookup loads the signed-in user on every request so permission
// changes apply without signing in again.
type UserLookup func(ctx context.Context, id int64) (*access.User, error)

// RequireUser rejects anonymous requests: API calls get 401, pages are
// redirected to /login.
func RequireUser(store sessions.Store, lookup UserLookup, logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "session")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := sessionUser(c, store, lookup)
			if err != nil {
				logger.WarnContext(c.Request().Context(), "Session rejected", "error", err)
			}
			if user == nil {
				if strings.HasPrefix(c.Request().URL.Path, "/api/") {
					return c.JSON(http.StatusUnauthorized, servers.Error{Error: msgUnauthorized})
				}
				return c.Redirect(http.StatusFound, "/login")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireSuper must run after RequireUser.
func RequireSuper(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if u := currentUser(c); u == nil || !u.IsSuper() {
			return c.JSON(http.StatusForbidden, servers.Error{Error: msgForbidden})
		}
		return next(c)
	}
}

func sessionUser(c echo.Context, store sessions.Store, lookup UserLookup) (*access.User, error) {
	sess, err := store.Get(c.Request(), sessionName)
	if err != nil {
		return nil, err
	}

	id, ok := sess.Values[sessionUserID].(int64)
	if !ok {
		return nil, nil
	}

	user, err := lookup(c.Request().Context(), id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
