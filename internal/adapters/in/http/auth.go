package http

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"tracking/internal/core/application/usecases/commands"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

// Identity is what the login flow learns about the user.
type Identity struct {
	Email string
	Name  string
}

// IdentityProvider runs the authorization-code flow.
type IdentityProvider interface {
	AuthCodeURL(state, nonce string) string
	Exchange(ctx context.Context, code, nonce string) (Identity, error)
	LogoutURL(postLogoutRedirect string) string
}

// EntraConfig identifies the application registered in Microsoft Entra ID.
type EntraConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// EntraProvider signs users in with Microsoft Entra ID and verifies the
// returned ID token against the tenant's published keys.
type EntraProvider struct {
	tenantID string
	oauth    *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

var _ IdentityProvider = (*EntraProvider)(nil)

// NewEntraProvider fetches the tenant's OpenID configuration.
func NewEntraProvider(ctx context.Context, cfg EntraConfig) (*EntraProvider, error) {
	provider, err := oidc.NewProvider(ctx, "https://login.microsoftonline.com/"+cfg.TenantID+"/v2.0")
	if err != nil {
		return nil, err
	}

	return &EntraProvider{
		tenantID: cfg.TenantID,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     microsoft.AzureADEndpoint(cfg.TenantID),
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email", "User.Read"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

func (p *EntraProvider) AuthCodeURL(state, nonce string) string {
	return p.oauth.AuthCodeURL(state, oidc.Nonce(nonce))
}

func (p *EntraProvider) Exchange(ctx context.Context, code, nonce string) (Identity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return Identity{}, err
	}

	raw, ok := token.Extra("id_token").(string)
	if !ok {
		return Identity{}, errors.New("token response has no id_token")
	}

	idToken, err := p.verifier.Verify(ctx, raw)
	if err != nil {
		return Identity{}, err
	}
	if idToken.Nonce != nonce {
		return Identity{}, errors.New("id_token nonce mismatch")
	}

	var claims struct {
		PreferredUsername string `json:"preferred_username"`
		Email             string `json:"email"`
		Name              string `json:"name"`
	}
	if err = idToken.Claims(&claims); err != nil {
		return Identity{}, err
	}

	email := claims.PreferredUsername
	if email == "" {
		email = claims.Email
	}
	return Identity{Email: email, Name: claims.Name}, nil
}

func (p *EntraProvider) LogoutURL(postLogoutRedirect string) string {
	return "https://login.microsoftonline.com/" + p.tenantID +
		"/oauth2/v2.0/logout?post_logout_redirect_uri=" + url.QueryEscape(postLogoutRedirect)
}

// Auth serves /login, /get_token and /logout.
type Auth struct {
	provider IdentityProvider
	store    sessions.Store
	login    UserLoginHandler
	logger   *slog.Logger
}

func NewAuth(provider IdentityProvider, store sessions.Store, login UserLoginHandler, logger *slog.Logger) *Auth {
	return &Auth{
		provider: provider,
		store:    store,
		login:    login,
		logger:   logger.With("component", "auth"),
	}
}

// Login starts the flow, keeping state and nonce in the session.
func (a *Auth) Login(c echo.Context) error {
	// A stale or undecodable cookie still yields a usable new session.
	sess, _ := a.store.Get(c.Request(), sessionName)

	state, nonce := randomToken(), randomToken()
	sess.Values[sessionState] = state
	sess.Values[sessionNonce] = nonce
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, a.provider.AuthCodeURL(state, nonce))
}

// Callback completes the flow, finds or creates the user and signs them in.
func (a *Auth) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	sess, _ := a.store.Get(c.Request(), sessionName)

	if e := c.QueryParam("error"); e != "" {
		return c.String(http.StatusBadRequest, "Error de login: "+c.QueryParam("error_description"))
	}

	state, _ := sess.Values[sessionState].(string)
	nonce, _ := sess.Values[sessionNonce].(string)
	if state == "" || c.QueryParam("state") != state {
		return c.String(http.StatusBadRequest, "Error de login: estado de autenticación inválido.")
	}

	identity, err := a.provider.Exchange(ctx, c.QueryParam("code"), nonce)
	if err != nil {
		a.logger.WarnContext(ctx, "Token exchange failed", "error", err)
		return c.String(http.StatusBadRequest, "Error de login: no se pudo validar la sesión de Microsoft.")
	}

	cmd, err := commands.NewLoginUserCommand(identity.Email, identity.Name)
	if err != nil {
		return c.String(http.StatusBadRequest, "Error de login: la cuenta no tiene correo.")
	}
	user, err := a.login.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	delete(sess.Values, sessionState)
	delete(sess.Values, sessionNonce)
	sess.Values[sessionUserID] = user.ID()
	if err = sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "User signed in", "email", user.Email(), "role", user.Role())
	return c.Redirect(http.StatusFound, "/")
}

// Logout clears the session and signs out of Microsoft too.
func (a *Auth) Logout(c echo.Context) error {
	sess, _ := a.store.Get(c.Request(), sessionName)
	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	index := c.Scheme() + "://" + c.Request().Host + "/"
	return c.Redirect(http.StatusFound, a.provider.LogoutURL(index))
}

func randomToken() string {
	return base64.RawURLEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
}
