package model

import "time"

// SettingsSingletonID: desa_settings hanya boleh punya satu baris.
const SettingsSingletonID uint = 1

const (
	DefaultNamaDesa       = "Desa Digital"
	DefaultPrimaryColor   = "#3B82F6"
	DefaultSecondaryColor = "#10B981"
)

type DesaSettingsModel struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement:false;check:chk_desa_settings_singleton,id = 1" json:"id"`
	NamaDesa       string    `gorm:"column:nama_desa;size:255;not null" json:"nama_desa"`
	Slogan         string    `gorm:"column:slogan;type:text" json:"slogan"`
	Alamat         string    `gorm:"column:alamat;type:text" json:"alamat"`
	Logo           string    `gorm:"column:logo;size:255" json:"logo"`
	HeroImage      string    `gorm:"column:hero_image;size:255" json:"hero_image"`
	PrimaryColor   string    `gorm:"column:primary_color;size:7;default:#3B82F6" json:"primary_color"`
	SecondaryColor string    `gorm:"column:secondary_color;size:7;default:#10B981" json:"secondary_color"`
	Deskripsi      string    `gorm:"column:deskripsi;type:text" json:"deskripsi"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DesaSettingsModel) TableName() string { return "desa_settings" }

// DefaultSettings: baris awal saat tabel masih kosong.
func DefaultSettings() DesaSettingsModel {
	return DesaSettingsModel{
		ID:             SettingsSingletonID,
		NamaDesa:       DefaultNamaDesa,
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
	}
}
