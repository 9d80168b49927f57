package user

import (
	"time"
)

type (
	User struct {
		ID           uint64
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
