package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"desa_digital_backend/internals/features/publikasi/news/model"
	helper "desa_digital_backend/internals/helpers"
)

/* =========================================================
   Requests: CREATE
   ========================================================= */

type CreateNewsRequest struct {
	Judul   string  `json:"judul" validate:"required,max=255"`
	Konten  string  `json:"konten" validate:"required"`
	Gambar  *string `json:"gambar" validate:"omitempty,max=255"`
	Tanggal *string `json:"tanggal" validate:"omitempty"`
	Penulis *string `json:"penulis" validate:"omitempty,max=255"`
	Status  string  `json:"status" validate:"omitempty,oneof=published draft"`
}

func (r *CreateNewsRequest) Normalize() {
	r.Judul = strings.TrimSpace(r.Judul)
	r.Konten = strings.TrimSpace(r.Konten)
	r.Gambar = helper.TrimPtr(r.Gambar)
	r.Tanggal = helper.TrimPtr(r.Tanggal)
	r.Penulis = helper.TrimPtr(r.Penulis)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = model.NewsStatusDraft
	}
}

func (r *CreateNewsRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ToModel: penulis default = nama admin yang login; tanggal default = hari ini.
func (r *CreateNewsRequest) ToModel(defaultPenulis string) (*model.NewsModel, error) {
	tanggal := helper.TodayDate()
	if r.Tanggal != nil {
		d, err := helper.ParseDate(*r.Tanggal)
		if err != nil {
			return nil, err
		}
		tanggal = d
	}
	penulis := defaultPenulis
	if r.Penulis != nil {
		penulis = *r.Penulis
	}
	if penulis == "" {
		penulis = "Admin Desa"
	}
	return &model.NewsModel{
		Judul:   r.Judul,
		Konten:  r.Konten,
		Gambar:  helper.Deref(r.Gambar),
		Tanggal: tanggal,
		Penulis: penulis,
		Status:  r.Status,
	}, nil
}

/* =========================================================
   Requests: UPDATE (partial)
   ========================================================= */

type UpdateNewsRequest struct {
	Judul   *string `json:"judul" validate:"omitempty,min=1,max=255"`
	Konten  *string `json:"konten" validate:"omitempty,min=1"`
	Gambar  *string `json:"gambar" validate:"omitempty,max=255"`
	Tanggal *string `json:"tanggal" validate:"omitempty"`
	Penulis *string `json:"penulis" validate:"omitempty,min=1,max=255"`
	Status  *string `json:"status" validate:"omitempty,oneof=published draft"`
}

func (r *UpdateNewsRequest) Normalize() {
	r.Judul = helper.TrimPtr(r.Judul)
	r.Konten = helper.TrimPtr(r.Konten)
	r.Gambar = helper.TrimPatch(r.Gambar)
	r.Tanggal = helper.TrimPtr(r.Tanggal)
	r.Penulis = helper.TrimPtr(r.Penulis)
	if r.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &s
	}
}

func (r *UpdateNewsRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpdateNewsRequest) ToUpdates() (map[string]any, error) {
	m := map[string]any{}
	if r.Judul != nil {
		m["judul"] = *r.Judul
	}
	if r.Konten != nil {
		m["konten"] = *r.Konten
	}
	if r.Gambar != nil {
		m["gambar"] = *r.Gambar
	}
	if r.Penulis != nil {
		m["penulis"] = *r.Penulis
	}
	if r.Status != nil {
		m["status"] = *r.Status
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
