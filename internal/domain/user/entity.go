package user

import (
	"time"
)

type (
	ID   uint64
	User struct {
		ID           ID
		Name         string
		Lastname     string
		Username     string
		Email        string
		PasswordHash *string
		HiringDate   *time.Time
		DUI          *string
		PhoneNumber  *string
		BirthDate    *time.Time

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User
)

func (u *User) Trashed() bool { return u.DeletedAt != nil }
