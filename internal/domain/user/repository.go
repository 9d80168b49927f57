package user

import (
	"context"
)

// UniqueField names the columns covered by uniqueness checks.
type UniqueField string

const (
	FieldUsername UniqueField = "username"
	FieldEmail    UniqueField = "email"
	FieldDUI      UniqueField = "dui"
)

type Repository interface {
	FetchUsers(ctx context.Context, f Filter) (Users, error)
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, id ID, p Patch) (*User, error)
	SoftDeleteUser(ctx context.Context, id ID) (*User, error)
	RestoreUser(ctx context.Context, id ID) (*User, error)
	// ValueTaken reports whether another record (trashed ones included)
	// already holds the value, ignoring the excluded id.
	ValueTaken(ctx context.Context, field UniqueField, value string, exclude ID) (bool, error)
}
