package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "Valid simple", username: "johndoe", wantErr: false},
		{name: "Valid with digits and separators", username: "john_doe-99", wantErr: false},
		{name: "Minimum length", username: "abc", wantErr: false},
		{name: "Maximum length", username: "a2345678901234567890", wantErr: false},
		{name: "Too short", username: "ab", wantErr: true},
		{name: "Too long", username: "a23456789012345678901", wantErr: true},
		{name: "Empty", username: "", wantErr: true},
		{name: "Spaces", username: "john doe", wantErr: true},
		{name: "Unicode", username: "jöhn", wantErr: true},
		{name: "Punctuation", username: "john.doe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUsername)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBaseUsername(t *testing.T) {
	tests := []struct {
		name  string
		dname string
		email string
		want  string
	}{
		{name: "Plain display name", dname: "John Doe", email: "jd@example.com", want: "johndoe"},
		{name: "Display name with symbols", dname: "John D. O'Brien!", email: "jd@example.com", want: "johndobrien"},
		{name: "Keeps underscores and dashes", dname: "j_d-x", email: "jd@example.com", want: "j_d-x"},
		{name: "Empty name falls back to email local part", dname: "", email: "First.Last@example.com", want: "firstlast"},
		{name: "Symbol-only name falls back to email", dname: "!!!", email: "jd99@example.com", want: "jd99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, baseUsername(tt.dname, tt.email))
		})
	}
}
