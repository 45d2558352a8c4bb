package model

import "time"

type LayananModel struct {
	ID              uint      `gorm:"column:id;primaryKey" json:"id"`
	Nama            string    `gorm:"column:nama;size:255;not null" json:"nama"`
	Deskripsi       string    `gorm:"column:deskripsi;type:text" json:"deskripsi"`
	Persyaratan     string    `gorm:"column:persyaratan;type:text" json:"persyaratan"`
	TemplateDokumen *string   `gorm:"column:template_dokumen;size:255" json:"template_dokumen"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LayananModel) TableName() string { return "layanan" }
