package user

import (
	domain "user-directory-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		Name:         model.Name,
		Lastname:     model.Lastname,
		Username:     model.Username,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		HiringDate:   model.HiringDate,
		DUI:          model.DUI,
		PhoneNumber:  model.PhoneNumber,
		BirthDate:    model.BirthDate,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
