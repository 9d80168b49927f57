package user

const userColumns = `id, name, lastname, username, email, password_hash, hiring_date, dui, phone_number, birth_date, created_at, updated_at, deleted_at`

const (
	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`
	SelectUserByUsername = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (name, lastname, username, email, password_hash, hiring_date, dui, phone_number, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns + `
	`
	SoftDeleteUserByID = `
		UPDATE users
		SET deleted_at = now(),
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns + `
	`
	RestoreUserByID = `
		UPDATE users
		SET deleted_at = NULL,
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING ` + userColumns + `
	`
)
