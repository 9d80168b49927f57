package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-directory-api/internal/domain/user"
	"user-directory-api/internal/interface/api/rest/dto/auth"
)

const validBody = `{
	"name": "Edgar",
	"lastname": "Lopez",
	"username": "edgar.lopez",
	"email": "Edgar.Lopez@Example.com",
	"hiring_date": "2024-03-01",
	"dui": "12345678-9",
	"phone_number": "+503 2222-3333",
	"birth_date": "1990-05-20"
}`

func TestParseUser_CreateValid(t *testing.T) {
	p, errs, err := ParseUser([]byte(validBody), ModeCreate)
	require.NoError(t, err)
	require.Nil(t, errs)

	require.NotNil(t, p.Name)
	assert.Equal(t, "Edgar", *p.Name)
	require.NotNil(t, p.Lastname)
	assert.Equal(t, "Lopez", *p.Lastname)
	require.NotNil(t, p.Username)
	assert.Equal(t, "edgar.lopez", *p.Username)

	// email is normalized to lower case
	require.NotNil(t, p.Email)
	assert.Equal(t, "edgar.lopez@example.com", *p.Email)

	require.True(t, p.HiringDate.Set)
	require.True(t, p.HiringDate.Valid)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.HiringDate.Value)

	require.True(t, p.DUI.Set)
	require.True(t, p.DUI.Valid)
	assert.Equal(t, "12345678-9", p.DUI.Value)

	require.True(t, p.PhoneNumber.Set)
	require.True(t, p.PhoneNumber.Valid)
	assert.Equal(t, "+503 2222-3333", p.PhoneNumber.Value)

	require.True(t, p.BirthDate.Set)
	require.True(t, p.BirthDate.Valid)
	assert.Equal(t, time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), p.BirthDate.Value)
}

func TestParseUser_MalformedJSON(t *testing.T) {
	_, errs, err := ParseUser([]byte(`{"name": `), ModeCreate)
	require.Error(t, err)
	assert.Nil(t, errs)
}

func TestParseUser_Table(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mode       Mode
		wantFields []string
	}{
		{
			name:       "create: all required fields missing",
			body:       `{}`,
			mode:       ModeCreate,
			wantFields: []string{"name", "lastname", "username", "email"},
		},
		{
			name:       "replace: all required fields missing",
			body:       `{}`,
			mode:       ModeReplace,
			wantFields: []string{"name", "lastname", "username", "email"},
		},
		{
			name:       "patch: empty body is fine",
			body:       `{}`,
			mode:       ModePatch,
			wantFields: nil,
		},
		{
			name:       "create: explicit null on required field",
			body:       `{"name":null,"lastname":"L","username":"u","email":"u@e.com"}`,
			mode:       ModeCreate,
			wantFields: []string{"name"},
		},
		{
			name:       "patch: explicit null on required field still rejected",
			body:       `{"email":null}`,
			mode:       ModePatch,
			wantFields: []string{"email"},
		},
		{
			name:       "patch: explicit null on nullable fields accepted",
			body:       `{"hiring_date":null,"dui":null,"phone_number":null,"birth_date":null}`,
			mode:       ModePatch,
			wantFields: nil,
		},
		{
			name:       "create: blank required strings",
			body:       `{"name":"  ","lastname":"","username":" ","email":""}`,
			mode:       ModeCreate,
			wantFields: []string{"name", "lastname", "username", "email"},
		},
		{
			name:       "create: bad email",
			body:       `{"name":"N","lastname":"L","username":"u","email":"not-an-email"}`,
			mode:       ModeCreate,
			wantFields: []string{"email"},
		},
		{
			name:       "patch: dui wrong format",
			body:       `{"dui":"1234-5678"}`,
			mode:       ModePatch,
			wantFields: []string{"dui"},
		},
		{
			name:       "patch: phone with letters",
			body:       `{"phone_number":"call me"}`,
			mode:       ModePatch,
			wantFields: []string{"phone_number"},
		},
		{
			name:       "patch: unparsable dates",
			body:       `{"hiring_date":"01/03/2024","birth_date":"yesterday"}`,
			mode:       ModePatch,
			wantFields: []string{"hiring_date", "birth_date"},
		},
		{
			name:       "patch: birth date today rejected",
			body:       `{"birth_date":"` + time.Now().UTC().Format("2006-01-02") + `"}`,
			mode:       ModePatch,
			wantFields: []string{"birth_date"},
		},
		{
			name:       "patch: birth date in the future rejected",
			body:       `{"birth_date":"` + time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02") + `"}`,
			mode:       ModePatch,
			wantFields: []string{"birth_date"},
		},
		{
			name:       "create: non-string value",
			body:       `{"name":42,"lastname":"L","username":"u","email":"u@e.com"}`,
			mode:       ModeCreate,
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, errs, err := ParseUser([]byte(tt.body), tt.mode)
			require.NoError(t, err)

			if tt.wantFields == nil {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestParseUser_PatchLeavesAbsentFieldsUnset(t *testing.T) {
	p, errs, err := ParseUser([]byte(`{"name":"OnlyName"}`), ModePatch)
	require.NoError(t, err)
	require.Nil(t, errs)

	require.NotNil(t, p.Name)
	assert.Equal(t, "OnlyName", *p.Name)

	assert.Nil(t, p.Lastname)
	assert.Nil(t, p.Username)
	assert.Nil(t, p.Email)
	assert.False(t, p.HiringDate.Set)
	assert.False(t, p.DUI.Set)
	assert.False(t, p.PhoneNumber.Set)
	assert.False(t, p.BirthDate.Set)
	assert.False(t, p.Empty())
}

func TestParseUser_NullVsAbsentNullable(t *testing.T) {
	p, errs, err := ParseUser([]byte(`{"dui":null}`), ModePatch)
	require.NoError(t, err)
	require.Nil(t, errs)

	// null is an order to clear the column, absence is not
	assert.True(t, p.DUI.Set)
	assert.False(t, p.DUI.Valid)
	assert.False(t, p.PhoneNumber.Set)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		wantID user.ID
		ok     bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			id, err := ParseID(tt.in)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Nil(t, ValidateLogin(auth.LoginRequest{Username: "u", Password: "p"}))

	errs := ValidateLogin(auth.LoginRequest{Username: " ", Password: ""})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")
}
