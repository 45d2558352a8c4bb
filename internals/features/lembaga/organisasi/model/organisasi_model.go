package model

import "time"

type OrganisasiModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Nama      string    `gorm:"column:nama;size:255;not null" json:"nama"`
	Jabatan   string    `gorm:"column:jabatan;size:255;not null" json:"jabatan"`
	Foto      string    `gorm:"column:foto;size:255" json:"foto"`
	Urutan    int       `gorm:"column:urutan;not null;default:0;index:idx_organisasi_urutan" json:"urutan"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrganisasiModel) TableName() string { return "organisasi" }
