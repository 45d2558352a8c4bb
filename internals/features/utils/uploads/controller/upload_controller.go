package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"desa_digital_backend/internals/features/utils/uploads/service"
	helper "desa_digital_backend/internals/helpers"
)

type UploadController struct {
	Service *service.UploadService
}

func NewUploadController(svc *service.UploadService) *UploadController {
	return &UploadController{Service: svc}
}

// POST /api/uploads?folder= (multipart field "file")
func (uc *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field 'file' wajib diisi")
	}

	res, err := uc.Service.Save(c.UserContext(), c.Query("folder"), fh)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileTooLarge):
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, service.ErrUnsupportedType):
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
		case errors.Is(err, service.ErrInvalidFolder), errors.Is(err, service.ErrEmptyFile):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] upload %s: %v", fh.Filename, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah file")
	}
	log.Printf("[INFO] 📤 upload %s → %s (%s)", fh.Filename, res.Key, res.Storage)
	return helper.JsonCreated(c, "File terunggah", res)
}
