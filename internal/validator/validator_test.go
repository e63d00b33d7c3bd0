package validator

import (
	"strings"
	"testing"
)

func TestPasswordStrength(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "strong", password: "Str0ng#pass", valid: true},
		{name: "too short", password: "S0#a", valid: false},
		{name: "no uppercase", password: "str0ng#pass", valid: false},
		{name: "no digit", password: "Strong#pass", valid: false},
		{name: "no special", password: "Str0ngpass", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := LoginRequest{Email: "ivan@example.com", Password: tt.password}
			errs := v.Validate(&req)
			if tt.valid && len(errs) > 0 {
				t.Errorf("Expected %q to pass, got %v", tt.password, errs)
			}
			if !tt.valid && len(errs) == 0 {
				t.Errorf("Expected %q to fail", tt.password)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	v := New()

	base := ExerciseCreateRequest{
		Name:              "Deadlift",
		Description:       strings.Repeat("Hinge at the hips and keep the bar close. ", 2),
		TutorialPhoto:     "media/deadlift.png",
		TutorialExtension: "png",
		VideoExample:      "media/deadlift.mp4",
		VideoExtension:    "mp4",
	}

	tests := []struct {
		name   string
		author string
		valid  bool
	}{
		{name: "two names", author: "Ivan Milev", valid: true},
		{name: "single name", author: "Ivan", valid: false},
		{name: "three names", author: "Ivan Antonov Milev", valid: false},
		{name: "short name part", author: "I Milev", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.Author = tt.author
			errs := v.Validate(&req)
			if tt.valid && len(errs) > 0 {
				t.Errorf("Expected %q to pass, got %v", tt.author, errs)
			}
			if !tt.valid && len(errs) == 0 {
				t.Errorf("Expected %q to fail", tt.author)
			}
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	v := New()

	errs := v.Validate(&RegisterRequest{Email: "not-an-email", Password: "weak"})
	if len(errs) == 0 {
		t.Fatal("Expected validation errors")
	}

	messages := map[string]string{}
	for _, err := range errs {
		messages[err.Field] = err.Message
	}

	if messages["email"] != "Not a valid email address." {
		t.Errorf("Unexpected email message: %q", messages["email"])
	}
	if messages["firstname"] != "Missing data for required field." {
		t.Errorf("Unexpected first_name message: %q", messages["firstname"])
	}
	if messages["password"] != "Password is not strong enough, try another one" {
		t.Errorf("Unexpected password message: %q", messages["password"])
	}

	if !strings.HasPrefix(errs.Error(), "Invalid fields: ") {
		t.Errorf("Unexpected aggregate message: %q", errs.Error())
	}
}
