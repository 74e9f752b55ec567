package middleware

import "context"

// contextKey is a private type for request context keys.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	sessionIDKey = contextKey("sessionID")
	adminUserKey = contextKey("adminUser")
)

// GetSessionIDFromCtx retrieves the browsing session ID from the request
// context. It returns the ID and whether one was found.
func GetSessionIDFromCtx(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}

// GetAdminUserFromCtx retrieves the authenticated admin subject from the
// request context.
func GetAdminUserFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminUserKey).(string)
	return subject, ok && subject != ""
}
