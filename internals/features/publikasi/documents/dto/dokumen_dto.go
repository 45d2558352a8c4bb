package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"desa_digital_backend/internals/features/publikasi/documents/model"
	helper "desa_digital_backend/internals/helpers"
)

type CreateDokumenRequest struct {
	Judul     string  `json:"judul" validate:"required,max=255"`
	Deskripsi *string `json:"deskripsi"`
	FilePath  string  `json:"file_path" validate:"required,max=255"`
	Kategori  *string `json:"kategori" validate:"omitempty,max=100"`
	Ukuran    int64   `json:"ukuran" validate:"gte=0"`
}

func (r *CreateDokumenRequest) Normalize() {
	r.Judul = strings.TrimSpace(r.Judul)
	r.FilePath = strings.TrimSpace(r.FilePath)
	r.Deskripsi = helper.TrimPtr(r.Deskripsi)
	r.Kategori = helper.TrimPtr(r.Kategori)
}

func (r *CreateDokumenRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateDokumenRequest) ToModel() *model.DokumenModel {
	return &model.DokumenModel{
		Judul:     r.Judul,
		Deskripsi: helper.Deref(r.Deskripsi),
		FilePath:  r.FilePath,
		Kategori:  helper.Deref(r.Kategori),
		Ukuran:    r.Ukuran,
	}
}

type UpdateDokumenRequest struct {
	Judul     *string `json:"judul" validate:"omitempty,min=1,max=255"`
	Deskripsi *string `json:"deskripsi"`
	FilePath  *string `json:"file_path" validate:"omitempty,min=1,max=255"`
	Kategori  *string `json:"kategori" validate:"omitempty,max=100"`
	Ukuran    *int64  `json:"ukuran" validate:"omitempty,gte=0"`
}

func (r *UpdateDokumenRequest) Normalize() {
	r.Judul = helper.TrimPtr(r.Judul)
	r.FilePath = helper.TrimPtr(r.FilePath)
	r.Deskripsi = helper.TrimPatch(r.Deskripsi)
	r.Kategori = helper.TrimPatch(r.Kategori)
}

func (r *UpdateDokumenRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *UpdateDokumenRequest) ToUpdates() map[string]any {
	m := map[string]any{}
	if r.Judul != nil {
		m["judul"] = *r.Judul
	}
	if r.Deskripsi != nil {
		m["deskripsi"] = *r.Deskripsi
	}
	if r.FilePath != nil {
		m["file_path"] = *r.FilePath
	}
	if r.Kategori != nil {
		m["kategori"] = *r.Kategori
	}
	if r.Ukuran != nil {
		m["ukuran"] = *r.Ukuran
	}
	return m
}
