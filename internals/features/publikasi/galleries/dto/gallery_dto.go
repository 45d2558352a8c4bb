package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"desa_digital_backend/internals/features/publikasi/galleries/model"
	helper "desa_digital_backend/internals/helpers"
)

type CreateGalleryRequest struct {
	Judul     string  `json:"judul" validate:"required,max=255"`
	Deskripsi *string `json:"deskripsi"`
	Gambar    string  `json:"gambar" validate:"required,max=255"`
	Kategori  *string `json:"kategori" validate:"omitempty,max=100"`
	Tanggal   *string `json:"tanggal"`
}

func (r *CreateGalleryRequest) Normalize() {
	r.Judul = strings.TrimSpace(r.Judul)
	r.Gambar = strings.TrimSpace(r.Gambar)
	r.Deskripsi = helper.TrimPtr(r.Deskripsi)
	r.Kategori = helper.TrimPtr(r.Kategori)
	r.Tanggal = helper.TrimPtr(r.Tanggal)
}

func (r *CreateGalleryRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateGalleryRequest) ToModel() (*model.GalleryModel, error) {
	tanggal := helper.TodayDate()
	if r.Tanggal != nil {
		d, err := helper.ParseDate(*r.Tanggal)
		if err != nil {
			return nil, err
		}
		tanggal = d
	}
	return &model.GalleryModel{
		Judul:     r.Judul,
		Deskripsi: helper.Deref(r.Deskripsi),
		Gambar:    r.Gambar,
		Kategori:  helper.Deref(r.Kategori),
		Tanggal:   tanggal,
	}, nil
}

type UpdateGalleryRequest struct {
	Judul     *string `json:"judul" validate:"omitempty,min=1,max=255"`
	Deskripsi *string `json:"deskripsi"`
	Gambar    *string `json:"gambar" validate:"omitempty,min=1,max=255"`
	Kategori  *string `json:"kategori" validate:"omitempty,max=100"`
	Tanggal   *string `json:"tanggal"`
}

func (r *UpdateGalleryRequest) Normalize() {
	r.Judul = helper.TrimPtr(r.Judul)
	r.Gambar = helper.TrimPtr(r.Gambar)
	r.Deskripsi = helper.TrimPatch(r.Deskripsi)
	r.Kategori = helper.TrimPatch(r.Kategori)
	r.Tanggal = helper.TrimPtr(r.Tanggal)
}

func (r *UpdateGalleryRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *UpdateGalleryRequest) ToUpdates() (map[string]any, error) {
	m := map[string]any{}
	if r.Judul != nil {
		m["judul"] = *r.Judul
	}
	if r.Deskripsi != nil {
		m["deskripsi"] = *r.Deskripsi
	}
	if r.Gambar != nil {
		m["gambar"] = *r.Gambar
	}
	if r.Kategori != nil {
		m["kategori"] = *r.Kategori
	}
	if r.Tanggal != nil {
		d, err := helper.ParseDate(*r.Tanggal)
		if err != nil {
			return nil, err
		}
		m["tanggal"] = d
	}
	return m, nil
}
