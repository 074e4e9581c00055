package api_context

import (
	"context"
)

type ctxKey string

const (
	ProductIDKey  ctxKey = "productID"
	ClientIDKey   ctxKey = "clientID"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

func ProductIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ProductIDKey).(string)
	return id, ok
}

func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ClientIDKey).(string)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
