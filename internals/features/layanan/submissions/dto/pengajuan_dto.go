package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"desa_digital_backend/internals/features/layanan/submissions/model"
	helper "desa_digital_backend/internals/helpers"
	"desa_digital_backend/internals/helpers/dbtime"
)

/* ===================== Requests ===================== */

type CreatePengajuanRequest struct {
	LayananID     uint    `json:"layanan_id" validate:"required,gt=0"`
	Nama          string  `json:"nama" validate:"required,max=255"`
	NIK           string  `json:"nik" validate:"required,len=16,number"`
	FilePendukung *string `json:"file_pendukung" validate:"omitempty,max=255"`
}

func (r *CreatePengajuanRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.NIK = strings.ReplaceAll(strings.TrimSpace(r.NIK), " ", "")
	r.FilePendukung = helper.TrimPtr(r.FilePendukung)
}

func (r *CreatePengajuanRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

// ToModel: status & nomor diisi repository.
func (r *CreatePengajuanRequest) ToModel() *model.PengajuanLayananModel {
	return &model.PengajuanLayananModel{
		LayananID:     r.LayananID,
		Nama:          r.Nama,
		NIK:           r.NIK,
		FilePendukung: r.FilePendukung,
	}
}

type UpdateStatusRequest struct {
	Status  string  `json:"status" validate:"required"`
	Catatan *string `json:"catatan"`
}

func (r *UpdateStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Catatan = helper.TrimPatch(r.Catatan)
}

/* ===================== Responses ===================== */

// MaskNIK: 4 digit awal & akhir terlihat, sisanya '*'.
func MaskNIK(nik string) string {
	if len(nik) <= 8 {
		return strings.Repeat("*", len(nik))
	}
	return nik[:4] + strings.Repeat("*", len(nik)-8) + nik[len(nik)-4:]
}

// TrackingResponse untuk cek status publik (NIK disamarkan).
type TrackingResponse struct {
	NomorPengajuan string    `json:"nomor_pengajuan"`
	Nama           string    `json:"nama"`
	NIK            string    `json:"nik"`
	LayananID      uint      `json:"layanan_id"`
	LayananNama    string    `json:"layanan_nama"`
	Status         string    `json:"status"`
	Catatan        *string   `json:"catatan"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewTrackingResponse(p model.PengajuanLayananModel) TrackingResponse {
	out := TrackingResponse{
		NomorPengajuan: p.NomorPengajuan,
		Nama:           p.Nama,
		NIK:            MaskNIK(p.NIK),
		LayananID:      p.LayananID,
		Status:         p.Status,
		Catatan:        p.Catatan,
		CreatedAt:      dbtime.ToDesaTime(p.CreatedAt),
		UpdatedAt:      dbtime.ToDesaTime(p.UpdatedAt),
	}
	if p.Layanan != nil {
		out.LayananNama = p.Layanan.Nama
	}
	return out
}
