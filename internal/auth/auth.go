// Package auth wires OAuth sign-in through goth and carries the signed-in
// user's Microsoft access token to outbound Graph calls.
package auth

import (
	"context"
	"fmt"
	"os"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/microsoftonline"
)

// InitGothProviders registers the OAuth providers from environment
// configuration. Called once during route registration.
func InitGothProviders() {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	goth.UseProviders(
		microsoftonline.New(
			os.Getenv("MICROSOFT_CLIENT_ID"),
			os.Getenv("MICROSOFT_CLIENT_SECRET"),
			baseURL+"/auth/microsoftonline/callback",
			"User.Read", "Mail.Send", "Files.ReadWrite",
		),
	)
}

type ctxKey struct{}

// WithAccessToken returns a context carrying the user's OAuth access token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// AccessTokenFromContext retrieves the access token placed by the auth
// middleware. Outbound Microsoft Graph calls resolve their bearer token here.
func AccessTokenFromContext(ctx context.Context) (string, error) {
	token, ok := ctx.Value(ctxKey{}).(string)
	if !ok || token == "" {
		return "", fmt.Errorf("no access token in context")
	}
	return token, nil
}
