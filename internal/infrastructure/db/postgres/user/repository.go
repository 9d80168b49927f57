package user

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	domain "user-directory-api/internal/domain/user"
	"user-directory-api/internal/infrastructure/db/postgres"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Lastname,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.HiringDate,
		&u.DUI,
		&u.PhoneNumber,
		&u.BirthDate,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

// FetchUsers folds the optional filters onto the base query: active
// rows by default, trashed-only when asked, substring matches ANDed in.
func (r *Repository) FetchUsers(ctx context.Context, f domain.Filter) (domain.Users, error) {
	b := psql.Select(userColumns).From("users").OrderBy("id")

	if f.OnlyTrashed {
		b = b.Where("deleted_at IS NOT NULL")
	} else {
		b = b.Where("deleted_at IS NULL")
	}
	if f.Username != "" {
		b = b.Where(sq.Like{"username": "%" + f.Username + "%"})
	}
	if f.Email != "" {
		b = b.Where(sq.Like{"email": "%" + f.Email + "%"})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByUsername, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Name, req.Lastname, req.Username, req.Email, req.PasswordHash,
		req.HiringDate, req.DUI, req.PhoneNumber, req.BirthDate,
	))
	if err != nil {
		if fe, ok := uniqueFieldError(err); ok {
			return nil, fe
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

// UpdateUser writes only the fields present in the patch. An empty
// patch degrades to a plain fetch so the caller still gets the record.
func (r *Repository) UpdateUser(ctx context.Context, id domain.ID, p domain.Patch) (*domain.User, error) {
	if p.Empty() {
		return r.FetchUserByID(ctx, id)
	}

	b := psql.Update("users").Set("updated_at", sq.Expr("now()"))
	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Lastname != nil {
		b = b.Set("lastname", *p.Lastname)
	}
	if p.Username != nil {
		b = b.Set("username", *p.Username)
	}
	if p.Email != nil {
		b = b.Set("email", *p.Email)
	}
	if p.PasswordHash != nil {
		b = b.Set("password_hash", *p.PasswordHash)
	}
	if p.HiringDate.Set {
		b = b.Set("hiring_date", p.HiringDate.Ptr())
	}
	if p.DUI.Set {
		b = b.Set("dui", p.DUI.Ptr())
	}
	if p.PhoneNumber.Set {
		b = b.Set("phone_number", p.PhoneNumber.Ptr())
	}
	if p.BirthDate.Set {
		b = b.Set("birth_date", p.BirthDate.Ptr())
	}
	b = b.Where(sq.Eq{"id": uint64(id)}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + userColumns)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if fe, ok := uniqueFieldError(err); ok {
			return nil, fe
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) SoftDeleteUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SoftDeleteUserByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) RestoreUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, RestoreUserByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

// ValueTaken checks uniqueness across all rows, trashed included,
// skipping the excluded id on updates.
func (r *Repository) ValueTaken(ctx context.Context, field domain.UniqueField, value string, exclude domain.ID) (bool, error) {
	b := psql.Select("1").
		From("users").
		Where(sq.Eq{string(field): value}).
		Prefix("SELECT EXISTS (").
		Suffix(")")
	if exclude != 0 {
		b = b.Where(sq.NotEq{"id": uint64(exclude)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return false, err
	}

	var taken bool
	if err = r.db.QueryRow(ctx, query, args...).Scan(&taken); err != nil {
		return false, err
	}

	return taken, nil
}

// uniqueFieldError maps a unique-index violation that slipped past the
// pre-write checks (a concurrent writer) to the same field error the
// validator would have produced.
func uniqueFieldError(err error) (domain.FieldErrors, bool) {
	switch postgres.UniqueConstraint(err) {
	case "uq_users_username":
		return domain.TakenError(domain.FieldUsername), true
	case "uq_users_email":
		return domain.TakenError(domain.FieldEmail), true
	case "uq_users_dui":
		return domain.TakenError(domain.FieldDUI), true
	}
	return nil, false
}
