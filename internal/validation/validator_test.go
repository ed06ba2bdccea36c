package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type commentBody struct {
	Username string `json:"username" validate:"required,notblank"`
	Body     string `json:"body" validate:"required,notblank,max=20"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      commentBody
		wantFields []string
	}{
		{
			name:  "valid",
			input: commentBody{Username: "mallionaire", Body: "nice"},
		},
		{
			name:       "missing username",
			input:      commentBody{Body: "nice"},
			wantFields: []string{"username"},
		},
		{
			name:       "blank body",
			input:      commentBody{Username: "mallionaire", Body: "   "},
			wantFields: []string{"body"},
		},
		{
			name:       "both missing",
			input:      commentBody{},
			wantFields: []string{"username", "body"},
		},
		{
			name:       "body too long",
			input:      commentBody{Username: "mallionaire", Body: strings.Repeat("x", 21)},
			wantFields: []string{"body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if len(err.Errors()) != len(tt.wantFields) {
				t.Fatalf("expected %d field errors, got %d: %v", len(tt.wantFields), len(err.Errors()), err)
			}
			for _, f := range tt.wantFields {
				if !err.HasField(f) {
					t.Errorf("expected failure on %q, got %v", f, err)
				}
			}
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	err := ValidateStruct(commentBody{Body: "ok"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := err.Error(); got != "username is required" {
		t.Errorf("unexpected message %q", got)
	}

	err = ValidateStruct(commentBody{Username: "u", Body: "  "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fe := err.Errors()[0]
	if fe.Tag() != "notblank" || fe.Field() != "body" {
		t.Errorf("unexpected field error %s/%s", fe.Field(), fe.Tag())
	}
}
