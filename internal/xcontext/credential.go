package xcontext

import "context"

type credentialKey struct{}

// SetCredential attaches the bearer credential acquired for a single logical
// operation. Outgoing requests made with ctx use it instead of asking the token
// source again.
func SetCredential(ctx context.Context, accessToken string) context.Context {
	return context.WithValue(ctx, credentialKey{}, accessToken)
}

func GetCredential(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(credentialKey{}).(string)
	return token, ok && token != ""
}
