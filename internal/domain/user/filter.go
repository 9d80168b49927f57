package user

// Filter narrows a user listing. Username and Email are substring
// matches, composed with AND when both are present. OnlyTrashed flips
// the listing from active records to soft-deleted ones.
type Filter struct {
	Username    string
	Email       string
	OnlyTrashed bool
}
