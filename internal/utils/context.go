package utils

import "context"

type ctxKey string

const (
	UserIDKey    ctxKey = "user_id"
	UserEmailKey ctxKey = "email"
	UserRoleKey  ctxKey = "role"
)

const (
	RoleStaff   = "staff"
	RoleManager = "manager"
)

func SetUserContext(ctx context.Context, userID uint, email, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, UserEmailKey, email)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}

func GetUserEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(UserEmailKey).(string)
	return email
}

func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleKey).(string)
	return role
}
