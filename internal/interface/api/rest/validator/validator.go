package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"user-directory-api/internal/domain/user"
	"user-directory-api/internal/interface/api/rest/dto/auth"
)

const (
	dateLayout  = "2006-01-02"
	maxFieldLen = 255
)

var (
	duiRe   = regexp.MustCompile(`^\d{8}-\d$`)
	phoneRe = regexp.MustCompile(`^[0-9\-\+\(\)\s]+$`)
)

// Mode selects the presence policy of the rule table: Create and
// Replace demand every required field, Patch validates only the keys
// the payload actually carries.
type Mode int

const (
	ModeCreate Mode = iota
	ModeReplace
	ModePatch
)

// fieldRule ties a payload key to its presence policy and its
// format check. apply receives the decoded value (nil for an explicit
// null on a nullable field), stores it into the patch and returns a
// message for bad input.
type fieldRule struct {
	name     string
	required bool
	apply    func(p *user.Patch, val *string) string
}

var userRules = []fieldRule{
	{"name", true, applyName},
	{"lastname", true, applyLastname},
	{"username", true, applyUsername},
	{"email", true, applyEmail},
	{"hiring_date", false, applyHiringDate},
	{"dui", false, applyDUI},
	{"phone_number", false, applyPhoneNumber},
	{"birth_date", false, applyBirthDate},
}

// ParseUser evaluates the rule table over a raw JSON body. Keys absent
// from the payload never reach the patch, so omitted fields stay
// untouched on update. A non-nil error means the body was not valid
// JSON at all; field problems come back in the FieldErrors map.
func ParseUser(body []byte, mode Mode) (user.Patch, user.FieldErrors, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return user.Patch{}, nil, fmt.Errorf("invalid json: %w", err)
	}

	var p user.Patch
	errs := make(user.FieldErrors)
	for _, r := range userRules {
		rv, present := raw[r.name]
		if !present {
			if r.required && mode != ModePatch {
				errs[r.name] = r.name + " is required"
			}
			continue
		}

		var val *string
		if !isJSONNull(rv) {
			var s string
			if err := json.Unmarshal(rv, &s); err != nil {
				errs[r.name] = r.name + " must be a string"
				continue
			}
			val = &s
		} else if r.required {
			errs[r.name] = r.name + " is required"
			continue
		}

		if msg := r.apply(&p, val); msg != "" {
			errs[r.name] = msg
		}
	}

	if len(errs) == 0 {
		return p, nil, nil
	}
	return user.Patch{}, errs, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

func applyName(p *user.Patch, val *string) string {
	s := strings.TrimSpace(*val)
	if s == "" {
		return "name is required"
	}
	if utf8.RuneCountInString(s) > maxFieldLen {
		return "name must be at most 255 characters"
	}
	p.Name = &s
	return ""
}

func applyLastname(p *user.Patch, val *string) string {
	s := strings.TrimSpace(*val)
	if s == "" {
		return "lastname is required"
	}
	if utf8.RuneCountInString(s) > maxFieldLen {
		return "lastname must be at most 255 characters"
	}
	p.Lastname = &s
	return ""
}

func applyUsername(p *user.Patch, val *string) string {
	s := strings.TrimSpace(*val)
	if s == "" {
		return "username is required"
	}
	if utf8.RuneCountInString(s) > maxFieldLen {
		return "username must be at most 255 characters"
	}
	p.Username = &s
	return ""
}

func applyEmail(p *user.Patch, val *string) string {
	s := strings.ToLower(strings.TrimSpace(*val))
	if s == "" {
		return "email is required"
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return "invalid email format"
	}
	p.Email = &s
	return ""
}

func applyHiringDate(p *user.Patch, val *string) string {
	if val == nil {
		p.HiringDate = user.Null[time.Time]()
		return ""
	}
	d, err := time.Parse(dateLayout, strings.TrimSpace(*val))
	if err != nil {
		return "hiring_date must be a valid date (YYYY-MM-DD)"
	}
	p.HiringDate = user.NullableOf(d)
	return ""
}

func applyDUI(p *user.Patch, val *string) string {
	if val == nil {
		p.DUI = user.Null[string]()
		return ""
	}
	if !duiRe.MatchString(*val) {
		return "dui must match the 00000000-0 format"
	}
	p.DUI = user.NullableOf(*val)
	return ""
}

func applyPhoneNumber(p *user.Patch, val *string) string {
	if val == nil {
		p.PhoneNumber = user.Null[string]()
		return ""
	}
	if *val == "" || !phoneRe.MatchString(*val) {
		return "phone_number may only contain digits, spaces and + - ( )"
	}
	p.PhoneNumber = user.NullableOf(*val)
	return ""
}

func applyBirthDate(p *user.Patch, val *string) string {
	if val == nil {
		p.BirthDate = user.Null[time.Time]()
		return ""
	}
	d, err := time.Parse(dateLayout, strings.TrimSpace(*val))
	if err != nil {
		return "birth_date must be a valid date (YYYY-MM-DD)"
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !d.Before(today) {
		return "birth_date must be before today"
	}
	p.BirthDate = user.NullableOf(d)
	return ""
}

// ParseID validates a numeric path identifier.
func ParseID(s string) (user.ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("user_id must be a positive integer")
	}
	return user.ID(id), nil
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
