package user

import (
	"time"
)

// User is the external representation of a user record. The password
// hash never crosses this boundary.
type (
	User struct {
		ID          uint64     `json:"id"`
		Name        string     `json:"name"`
		Lastname    string     `json:"lastname"`
		Username    string     `json:"username"`
		Email       string     `json:"email"`
		HiringDate  *string    `json:"hiring_date"`
		DUI         *string    `json:"dui"`
		PhoneNumber *string    `json:"phone_number"`
		BirthDate   *string    `json:"birth_date"`
		DeletedAt   *time.Time `json:"deleted_at"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
