package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"desa_digital_backend/internals/features/layanan/services/model"
	helper "desa_digital_backend/internals/helpers"
)

type CreateLayananRequest struct {
	Nama            string  `json:"nama" validate:"required,max=255"`
	Deskripsi       *string `json:"deskripsi"`
	Persyaratan     *string `json:"persyaratan"`
	TemplateDokumen *string `json:"template_dokumen" validate:"omitempty,max=255"`
}

func (r *CreateLayananRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.Deskripsi = helper.TrimPtr(r.Deskripsi)
	r.Persyaratan = helper.TrimPtr(r.Persyaratan)
	r.TemplateDokumen = helper.TrimPtr(r.TemplateDokumen)
}

func (r *CreateLayananRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateLayananRequest) ToModel() *model.LayananModel {
	return &model.LayananModel{
		Nama:            r.Nama,
		Deskripsi:       helper.Deref(r.Deskripsi),
		Persyaratan:     helper.Deref(r.Persyaratan),
		TemplateDokumen: r.TemplateDokumen,
	}
}

type UpdateLayananRequest struct {
	Nama            *string `json:"nama" validate:"omitempty,min=1,max=255"`
	Deskripsi       *string `json:"deskripsi"`
	Persyaratan     *string `json:"persyaratan"`
	TemplateDokumen *string `json:"template_dokumen" validate:"omitempty,max=255"`
}

func (r *UpdateLayananRequest) Normalize() {
	r.Nama = helper.TrimPtr(r.Nama)
	r.Deskripsi = helper.TrimPatch(r.Deskripsi)
	r.Persyaratan = helper.TrimPatch(r.Persyaratan)
	r.TemplateDokumen = helper.TrimPatch(r.TemplateDokumen)
}

func (r *UpdateLayananRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

// ToUpdates: template_dokumen "" → NULL.
func (r *UpdateLayananRequest) ToUpdates() map[string]any {
	m := map[string]any{}
	if r.Nama != nil {
		m["nama"] = *r.Nama
	}
	if r.Deskripsi != nil {
		m["deskripsi"] = *r.Deskripsi
	}
	if r.Persyaratan != nil {
		m["persyaratan"] = *r.Persyaratan
	}
	if r.TemplateDokumen != nil {
		if *r.TemplateDokumen == "" {
			m["template_dokumen"] = nil
		} else {
			m["template_dokumen"] = *r.TemplateDokumen
		}
	}
	return m
}
