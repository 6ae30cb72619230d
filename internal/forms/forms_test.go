package forms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestEmailShape(t *testing.T) {
	valid := []string{"a@b.co", "jane.doe+portal@evermore.health", "x@y.z"}
	invalid := []string{"", "plain", "a@b", "@b.co", "a@.co ", "a b@c.co", "a@b@c.co", "a@b."}

	for _, s := range valid {
		errs := ValidateLogin(LoginForm{Email: s, Password: "secret"})
		assert.False(t, errs.Has("email"), "expected %q to be accepted", s)
	}
	for _, s := range invalid {
		errs := ValidateLogin(LoginForm{Email: s, Password: "secret"})
		assert.True(t, errs.Has("email"), "expected %q to be rejected", s)
	}
}

func TestValidateLogin(t *testing.T) {
	got := ValidateLogin(LoginForm{})
	want := Errors{"email": MsgRequired, "password": MsgRequired}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ValidateLogin mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, ValidateLogin(LoginForm{Email: "a@b.co", Password: "x"}).Any())
}

func TestValidateSignup(t *testing.T) {
	valid := SignupForm{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@evermore.test",
		Phone:     "555-0100",
		DOB:       "1990-04-01",
		Password:  "abcdefgh",
		Password2: "abcdefgh",
		Agree:     true,
	}

	t.Run("valid form has no errors", func(t *testing.T) {
		assert.Empty(t, ValidateSignup(valid))
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		f := valid
		f.Password2 = "abcdefgX"
		errs := ValidateSignup(f)
		assert.Equal(t, MsgMismatch, errs.Get("password2"))
	})

	t.Run("short password", func(t *testing.T) {
		f := valid
		f.Password, f.Password2 = "abc", "abc"
		errs := ValidateSignup(f)
		assert.Equal(t, MsgPasswordShort, errs.Get("password"))
		assert.False(t, errs.Has("password2"))
	})

	t.Run("terms must be accepted", func(t *testing.T) {
		f := valid
		f.Agree = false
		errs := ValidateSignup(f)
		assert.Equal(t, Errors{"agree": MsgAgree}, errs)
	})

	t.Run("empty form reports every required field", func(t *testing.T) {
		got := ValidateSignup(SignupForm{})
		want := Errors{
			"firstName": MsgRequired,
			"lastName":  MsgRequired,
			"email":     MsgRequired,
			"phone":     MsgRequired,
			"dob":       MsgRequired,
			"password":  MsgRequired,
			"password2": MsgRequired,
			"agree":     MsgAgree,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ValidateSignup mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestValidateResetStep(t *testing.T) {
	f := ResetForm{Email: "nope", Password: "abcdefgh", Password2: "abcdefgX"}

	assert.Equal(t, Errors{"email": MsgEmail}, ValidateResetStep(1, f))
	assert.Equal(t, Errors{"code": MsgRequired}, ValidateResetStep(2, f))
	assert.Equal(t, Errors{"password2": MsgMismatch}, ValidateResetStep(3, f))

	f.Password2 = "abcdefgh"
	f.Code = "123456"
	assert.Empty(t, ValidateResetStep(2, f))
	assert.Empty(t, ValidateResetStep(3, f))
	assert.Empty(t, ValidateResetStep(7, f))
}

func TestVisible(t *testing.T) {
	errs := ValidateSignup(SignupForm{Email: "not-an-email"})
	assert.NotEmpty(t, errs)

	assert.Equal(t, Errors{}, Visible(false, errs), "errors stay hidden before the first attempt")
	assert.Equal(t, errs, Visible(true, errs))
}

func TestPasswordStrength(t *testing.T) {
	cases := map[string]Strength{
		"":            0,
		"abc":         0,
		"abcdefgh":    1,
		"Abcdefgh":    2,
		"Abcdefg1":    3,
		"Abcdefg1!":   4,
		"1234":        1,
		"pass word 1": 3,
	}
	for pw, want := range cases {
		assert.Equal(t, want, PasswordStrength(pw), "password %q", pw)
	}
	assert.Equal(t, "Strong", Strength(4).Label())
	assert.Equal(t, "Too weak", Strength(9).Label())
}

func TestSignupForm_Normalize(t *testing.T) {
	f := SignupForm{FirstName: " Jane ", LastName: "Doe ", Email: " jane@evermore.test"}
	f.Normalize()
	assert.Equal(t, "Jane Doe", f.FullName())
	assert.Equal(t, "jane@evermore.test", f.Email)
}
