package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	helper "desa_digital_backend/internals/helpers"
)

// UpdateDesaSettingsRequest: semua field opsional. Field yang tidak dikirim
// tidak mengubah nilai lama.
type UpdateDesaSettingsRequest struct {
	NamaDesa       *string `json:"nama_desa" validate:"omitempty,min=1,max=255"`
	Slogan         *string `json:"slogan" validate:"omitempty"`
	Alamat         *string `json:"alamat" validate:"omitempty"`
	Logo           *string `json:"logo" validate:"omitempty,max=255"`
	HeroImage      *string `json:"hero_image" validate:"omitempty,max=255"`
	PrimaryColor   *string `json:"primary_color" validate:"omitempty,hexcolor,len=7"`
	SecondaryColor *string `json:"secondary_color" validate:"omitempty,hexcolor,len=7"`
	Deskripsi      *string `json:"deskripsi" validate:"omitempty"`
}

func (r *UpdateDesaSettingsRequest) Normalize() {
	r.NamaDesa = helper.TrimPtr(r.NamaDesa) // nama desa tidak boleh dikosongkan
	r.Slogan = helper.TrimPatch(r.Slogan)
	r.Alamat = helper.TrimPatch(r.Alamat)
	r.Logo = helper.TrimPatch(r.Logo)
	r.HeroImage = helper.TrimPatch(r.HeroImage)
	r.PrimaryColor = upperHex(r.PrimaryColor)
	r.SecondaryColor = upperHex(r.SecondaryColor)
	r.Deskripsi = helper.TrimPatch(r.Deskripsi)
}

func (r *UpdateDesaSettingsRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ToUpdates: map kolom → nilai, hanya untuk field yang dikirim.
func (r *UpdateDesaSettingsRequest) ToUpdates() map[string]any {
	m := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			m[col] = *v
		}
	}
	set("nama_desa", r.NamaDesa)
	set("slogan", r.Slogan)
	set("alamat", r.Alamat)
	set("logo", r.Logo)
	set("hero_image", r.HeroImage)
	set("primary_color", r.PrimaryColor)
	set("secondary_color", r.SecondaryColor)
	set("deskripsi", r.Deskripsi)
	return m
}

func upperHex(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*s))
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	return &v
}
