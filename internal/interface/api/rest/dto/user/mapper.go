package user

import (
	"user-directory-api/internal/domain/user"
)

const dateLayout = "2006-01-02"

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:          uint64(uDomain.ID),
		Name:        uDomain.Name,
		Lastname:    uDomain.Lastname,
		Username:    uDomain.Username,
		Email:       uDomain.Email,
		DUI:         uDomain.DUI,
		PhoneNumber: uDomain.PhoneNumber,
		DeletedAt:   uDomain.DeletedAt,
	}

	if uDomain.HiringDate != nil {
		d := uDomain.HiringDate.Format(dateLayout)
		u.HiringDate = &d
	}
	if uDomain.BirthDate != nil {
		d := uDomain.BirthDate.Format(dateLayout)
		u.BirthDate = &d
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}
