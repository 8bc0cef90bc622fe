package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

const IdPUserCtxKey ctxKey = "idpUser"

// Claims do provedor de identidade hospedado (access token).
type IdPClaims struct {
	Scope    string `json:"scope,omitempty"`
	TokenUse string `json:"token_use,omitempty"` // "access" ou "id"
	ClientID string `json:"client_id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

var idpJWKS *keyfunc.JWKS

func ensureIdPJWKS() error {
	if idpJWKS != nil {
		return nil
	}
	url := os.Getenv("IDP_JWKS_URL")
	if url == "" {
		return errors.New("IDP_JWKS_URL não definida")
	}
	var err error
	idpJWKS, err = keyfunc.Get(url, keyfunc.Options{
		RefreshInterval:     time.Hour,
		RefreshErrorHandler: func(err error) {},
	})
	return err
}

// MiddlewareAutenticacaoIdP valida tokens emitidos pelo provedor de
// identidade hospedado (JWKS remoto) em vez das chaves locais. Caminho
// alternativo para instalações que delegam o login.
func MiddlewareAutenticacaoIdP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(authz, "Bearer ")

		if err := ensureIdPJWKS(); err != nil {
			http.Error(w, "jwks indisponível", http.StatusInternalServerError)
			return
		}

		var claims IdPClaims
		token, err := jwt.ParseWithClaims(raw, &claims, idpJWKS.Keyfunc,
			jwt.WithAudience(os.Getenv("IDP_CLIENT_ID")),
			jwt.WithIssuer(os.Getenv("IDP_ISSUER")),
		)
		if err != nil || !token.Valid {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}

		// para APIs o recomendado é o access token
		if claims.TokenUse != "" && claims.TokenUse != "access" {
			http.Error(w, "tipo de token errado", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), IdPUserCtxKey, map[string]any{
			"sub":      claims.Subject,
			"username": claims.Username,
			"clientId": claims.ClientID,
			"scope":    claims.Scope,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UsuarioIdP recupera a identidade injetada pelo middleware do IdP.
func UsuarioIdP(r *http.Request) (map[string]any, error) {
	u, ok := r.Context().Value(IdPUserCtxKey).(map[string]any)
	if !ok || u == nil {
		return nil, errors.New("sem usuário no contexto")
	}
	return u, nil
}

// IdPMeHandler devolve a identidade validada pelo IdP hospedado.
// Montar atrás de MiddlewareAutenticacaoIdP.
func IdPMeHandler(w http.ResponseWriter, r *http.Request) {
	u, err := UsuarioIdP(r)
	if err != nil {
		http.Error(w, "Token ausente", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}
