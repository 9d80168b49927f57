package user

import (
	"time"
)

// Nullable keeps the three states a payload key can be in: absent
// (Set == false), explicit null (Set && !Valid), or a value.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func NullableOf[T any](v T) Nullable[T] { return Nullable[T]{Set: true, Valid: true, Value: v} }

func Null[T any]() Nullable[T] { return Nullable[T]{Set: true} }

// Ptr returns the value as a pointer, nil when null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Patch holds only the fields a validated write request actually
// carried. Required fields can never be null, so a pointer is enough;
// nullable fields keep the null-vs-absent distinction.
type Patch struct {
	Name         *string
	Lastname     *string
	Username     *string
	Email        *string
	PasswordHash *string
	HiringDate   Nullable[time.Time]
	DUI          Nullable[string]
	PhoneNumber  Nullable[string]
	BirthDate    Nullable[time.Time]
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Lastname == nil && p.Username == nil &&
		p.Email == nil && p.PasswordHash == nil &&
		!p.HiringDate.Set && !p.DUI.Set && !p.PhoneNumber.Set && !p.BirthDate.Set
}

// Apply overwrites exactly the fields present in the patch.
func (p Patch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Lastname != nil {
		u.Lastname = *p.Lastname
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = p.PasswordHash
	}
	if p.HiringDate.Set {
		u.HiringDate = p.HiringDate.Ptr()
	}
	if p.DUI.Set {
		u.DUI = p.DUI.Ptr()
	}
	if p.PhoneNumber.Set {
		u.PhoneNumber = p.PhoneNumber.Ptr()
	}
	if p.BirthDate.Set {
		u.BirthDate = p.BirthDate.Ptr()
	}
}
