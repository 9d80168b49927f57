package ports

import (
	"context"

	"user-directory-api/internal/domain/user"
)

type UserService interface {
	FindUsers(ctx context.Context, f user.Filter) (user.Users, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	CreateUser(ctx context.Context, p user.Patch) (*user.User, error)
	UpdateUser(ctx context.Context, id user.ID, p user.Patch) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) (*user.User, error)
	RestoreUser(ctx context.Context, id user.ID) (*user.User, error)
}
