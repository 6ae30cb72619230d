package forms

import (
	"strings"
	"unicode"
)

// LoginForm is the state of the login form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,emailshape"`
	Password string `form:"password" validate:"required"`
	Remember bool   `form:"remember"`
}

// Normalize trims whitespace from identity fields. Passwords are kept verbatim.
func (f *LoginForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

// ValidateLogin checks the login form.
func ValidateLogin(f LoginForm) Errors {
	return check(f)
}

// SignupForm is the state of the signup form.
type SignupForm struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
	Email     string `form:"email" validate:"required,emailshape"`
	Phone     string `form:"phone" validate:"required"`
	DOB       string `form:"dob" validate:"required"`
	Password  string `form:"password" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
	Insurance string `form:"insurance"`
	Agree     bool   `form:"agree" validate:"required"`
	Marketing bool   `form:"marketing"`
}

// Normalize trims whitespace from the free-text fields.
func (f *SignupForm) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.DOB = strings.TrimSpace(f.DOB)
	f.Insurance = strings.TrimSpace(f.Insurance)
}

// FullName joins first and last name the way the backend expects.
func (f SignupForm) FullName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}

// ValidateSignup checks the signup form.
func ValidateSignup(f SignupForm) Errors {
	return check(f)
}

// ResetForm is the state of the three-step forgot-password form.
type ResetForm struct {
	Step      int    `form:"step"`
	Email     string `form:"email"`
	Code      string `form:"code"`
	Password  string `form:"password"`
	Password2 string `form:"password2"`
}

// Normalize trims whitespace from the email and code.
func (f *ResetForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
	f.Code = strings.TrimSpace(f.Code)
}

type resetEmailStep struct {
	Email string `form:"email" validate:"required,emailshape"`
}

type resetCodeStep struct {
	Code string `form:"code" validate:"required"`
}

type resetPasswordStep struct {
	Password  string `form:"password" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
}

// ValidateResetStep checks only the fields collected at the given step.
func ValidateResetStep(step int, f ResetForm) Errors {
	switch step {
	case 1:
		return check(resetEmailStep{Email: f.Email})
	case 2:
		return check(resetCodeStep{Code: f.Code})
	case 3:
		return check(resetPasswordStep{Password: f.Password, Password2: f.Password2})
	default:
		return Errors{}
	}
}

// Strength is a derived password score from 0 to 4.
type Strength int

var strengthLabels = [...]string{"Too weak", "Weak", "Fair", "Good", "Strong"}

// Label names the score for display.
func (s Strength) Label() string {
	if s < 0 || int(s) >= len(strengthLabels) {
		return strengthLabels[0]
	}
	return strengthLabels[s]
}

// PasswordStrength scores a password: one point each for reaching the minimum
// length, mixing cases, containing a digit, and containing a symbol.
func PasswordStrength(password string) Strength {
	if password == "" {
		return 0
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	score := 0
	if len([]rune(password)) >= MinPasswordLength {
		score++
	}
	if lower && upper {
		score++
	}
	if digit {
		score++
	}
	if symbol {
		score++
	}
	return Strength(score)
}
