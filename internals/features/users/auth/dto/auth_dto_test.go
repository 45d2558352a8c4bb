package dto

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestRegisterRequestValidate(t *testing.T) {
	v := validator.New()
	RegisterValidations(v)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "rahasia123", false},
		{"too short", "pendek", true},
		{"72 ascii bytes", strings.Repeat("a", 72), false},
		{"73 ascii bytes", strings.Repeat("a", 73), true},
		{"40 runes but 80 bytes", strings.Repeat("é", 40), true},
		{"36 runes, 72 bytes", strings.Repeat("é", 36), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RegisterRequest{Nama: " Admin ", Email: " Admin@Desa.ID ", Password: tt.password}
			req.Normalize()
			if err := req.Validate(v); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
