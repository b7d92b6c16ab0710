package services_test

import (
	"errors"
	"testing"

	"signage-backend/internal/services"
)

func TestValidateImageRef(t *testing.T) {
	cases := []struct {
		name  string
		ref   *string
		valid bool
	}{
		{"nil clears", nil, true},
		{"rooted path", strPtr("/image1.png"), true},
		{"nested rooted path", strPtr("/api/images/abc.png"), true},
		{"absolute url", strPtr("https://example.com/x.png"), true},
		{"http url", strPtr("http://cdn.local/y.jpg"), true},
		{"empty", strPtr(""), false},
		{"plain text", strPtr("not a url"), false},
		{"relative path", strPtr("images/x.png"), false},
		{"scheme only", strPtr("https://"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := services.ValidateImageRef(tc.ref)
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, services.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}
