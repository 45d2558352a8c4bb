package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"desa_digital_backend/internals/features/lembaga/organisasi/model"
	helper "desa_digital_backend/internals/helpers"
)

type CreateOrganisasiRequest struct {
	Nama    string  `json:"nama" validate:"required,max=255"`
	Jabatan string  `json:"jabatan" validate:"required,max=255"`
	Foto    *string `json:"foto" validate:"omitempty,max=255"`
	// nil → urutan terakhir + 1
	Urutan *int `json:"urutan" validate:"omitempty,gte=0"`
}

func (r *CreateOrganisasiRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.Jabatan = strings.TrimSpace(r.Jabatan)
	r.Foto = helper.TrimPtr(r.Foto)
}

func (r *CreateOrganisasiRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateOrganisasiRequest) ToModel() *model.OrganisasiModel {
	m := &model.OrganisasiModel{
		Nama:    r.Nama,
		Jabatan: r.Jabatan,
		Foto:    helper.Deref(r.Foto),
	}
	if r.Urutan != nil {
		m.Urutan = *r.Urutan
	}
	return m
}

type UpdateOrganisasiRequest struct {
	Nama    *string `json:"nama" validate:"omitempty,min=1,max=255"`
	Jabatan *string `json:"jabatan" validate:"omitempty,min=1,max=255"`
	Foto    *string `json:"foto" validate:"omitempty,max=255"`
	Urutan  *int    `json:"urutan" validate:"omitempty,gte=0"`
}

func (r *UpdateOrganisasiRequest) Normalize() {
	r.Nama = helper.TrimPtr(r.Nama)
	r.Jabatan = helper.TrimPtr(r.Jabatan)
	r.Foto = helper.TrimPatch(r.Foto)
}

func (r *UpdateOrganisasiRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *UpdateOrganisasiRequest) ToUpdates() map[string]any {
	m := map[string]any{}
	if r.Nama != nil {
		m["nama"] = *r.Nama
	}
	if r.Jabatan != nil {
		m["jabatan"] = *r.Jabatan
	}
	if r.Foto != nil {
		m["foto"] = *r.Foto
	}
	if r.Urutan != nil {
		m["urutan"] = *r.Urutan
	}
	return m
}

type SwapOrderRequest struct {
	FirstID  uint `json:"first_id" validate:"required,gt=0"`
	SecondID uint `json:"second_id" validate:"required,gt=0,nefield=FirstID"`
}

type MoveMemberRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

func (r *MoveMemberRequest) Normalize() {
	r.Direction = strings.ToLower(strings.TrimSpace(r.Direction))
}
