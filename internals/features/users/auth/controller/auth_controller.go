package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"desa_digital_backend/internals/configs"
	"desa_digital_backend/internals/features/users/auth/dto"
	authRepo "desa_digital_backend/internals/features/users/auth/repository"
	"desa_digital_backend/internals/features/users/auth/service"
	helper "desa_digital_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Now       func() time.Time
}

func NewAuthController(db *gorm.DB) *AuthController {
	v := validator.New()
	dto.RegisterValidations(v)
	return &AuthController{DB: db, Validator: v, Now: time.Now}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ac.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := service.Login(c.UserContext(), ac.DB, configs.JWTSecret, req.Email, req.Password, ac.Now())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		log.Printf("[ERROR] login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}
	log.Printf("[INFO] 🔑 login admin %s", res.Admin.Email)
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Admin:     dto.NewAdminResponse(res.Admin),
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}

// POST /api/auth/register: bootstrap (admin pertama) tanpa token, selanjutnya wajib admin.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ac.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}

	admin, err := service.Register(c.UserContext(), ac.DB, req.Nama, req.Email, req.Password, helper.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationClosed):
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, bcrypt.ErrPasswordTooLong):
			return helper.JsonError(c, fiber.StatusBadRequest, "Password maksimal 72 byte")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan admin")
	}
	return helper.JsonCreated(c, "Admin terdaftar", dto.NewAdminResponse(*admin))
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	if err := service.Logout(c.UserContext(), ac.DB, configs.JWTSecret, raw, ac.Now()); err != nil {
		log.Printf("[WARN] gagal blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	id, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	admin, err := authRepo.FindAdminByID(c.UserContext(), ac.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Admin tidak ditemukan")
		}
		log.Printf("[ERROR] me: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil admin")
	}
	return helper.JsonOK(c, "ok", dto.NewAdminResponse(*admin))
}
