package validation

import "testing"

type loginForm struct {
	Username string `validate:"required,min=3,max=80"`
	Password string `validate:"required,min=6"`
}

type cursoForm struct {
	Nombre           string `validate:"required,max=200"`
	CertificacionURL string `validate:"omitempty,url,max=200"`
}

func TestValidateStructValid(t *testing.T) {
	if errs := ValidateStruct(loginForm{Username: "daer", Password: "123456"}); errs != nil {
		t.Errorf("valid payload produced errors: %+v", errs)
	}
	if errs := ValidateStruct(cursoForm{Nombre: "Go desde cero"}); errs != nil {
		t.Errorf("optional empty URL produced errors: %+v", errs)
	}
}

func TestValidateStructInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload interface{}
		field   string
		tag     string
	}{
		{"missing username", loginForm{Password: "123456"}, "loginForm.Username", "required"},
		{"short password", loginForm{Username: "daer", Password: "123"}, "loginForm.Password", "min"},
		{"bad url", cursoForm{Nombre: "Go", CertificacionURL: "not a url"}, "cursoForm.CertificacionURL", "url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.payload)
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
			}
			if errs[0].FailedField != tt.field {
				t.Errorf("FailedField = %q, want %q", errs[0].FailedField, tt.field)
			}
			if errs[0].Tag != tt.tag {
				t.Errorf("Tag = %q, want %q", errs[0].Tag, tt.tag)
			}
			if errs[0].Message == "" {
				t.Error("empty validation message")
			}
		})
	}
}
