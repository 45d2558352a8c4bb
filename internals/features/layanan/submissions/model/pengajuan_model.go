package model

import (
	"strings"
	"time"

	layananModel "desa_digital_backend/internals/features/layanan/services/model"
)

const (
	StatusPending  = "pending"
	StatusDiproses = "diproses"
	StatusSelesai  = "selesai"
	StatusDitolak  = "ditolak"
)

// Alias bahasa Inggris yang diterima API; yang disimpan selalu bentuk Indonesia.
var statusAliases = map[string]string{
	StatusPending:  StatusPending,
	StatusDiproses: StatusDiproses,
	StatusSelesai:  StatusSelesai,
	StatusDitolak:  StatusDitolak,
	"processing":   StatusDiproses,
	"done":         StatusSelesai,
	"rejected":     StatusDitolak,
}

// NormalizeStatus: "" & false kalau status tidak dikenal.
func NormalizeStatus(s string) (string, bool) {
	v, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

type PengajuanLayananModel struct {
	ID             uint      `gorm:"column:id;primaryKey" json:"id"`
	LayananID      uint      `gorm:"column:layanan_id;not null;index:idx_pengajuan_layanan" json:"layanan_id"`
	NomorPengajuan string    `gorm:"column:nomor_pengajuan;size:50;not null;uniqueIndex:uq_pengajuan_nomor" json:"nomor_pengajuan"`
	Nama           string    `gorm:"column:nama;size:255;not null" json:"nama"`
	NIK            string    `gorm:"column:nik;size:16;not null" json:"nik"`
	FilePendukung  *string   `gorm:"column:file_pendukung;size:255" json:"file_pendukung"`
	Status         string    `gorm:"column:status;size:16;not null;default:pending;index:idx_pengajuan_status;check:chk_pengajuan_status,status IN ('pending','diproses','selesai','ditolak')" json:"status"`
	Catatan        *string   `gorm:"column:catatan;type:text" json:"catatan"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Layanan *layananModel.LayananModel `gorm:"foreignKey:LayananID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"layanan,omitempty"`
}

func (PengajuanLayananModel) TableName() string { return "pengajuan_layanan" }
