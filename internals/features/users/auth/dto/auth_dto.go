package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	authModel "desa_digital_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type RegisterRequest struct {
	Nama     string `json:"nama" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

func (r *RegisterRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *RegisterRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

// RegisterValidations: "maxbytes" menghitung byte (batas bcrypt 72 byte), bukan rune.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	})
}

type AdminResponse struct {
	ID        uint      `json:"id"`
	Nama      string    `json:"nama"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAdminResponse(a authModel.AdminModel) AdminResponse {
	return AdminResponse{ID: a.ID, Nama: a.Nama, Email: a.Email, CreatedAt: a.CreatedAt}
}

type LoginResponse struct {
	Admin     AdminResponse `json:"admin"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}
