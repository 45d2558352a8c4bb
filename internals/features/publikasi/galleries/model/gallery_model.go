package model

import (
	"time"

	"gorm.io/datatypes"
)

type GalleryModel struct {
	ID        uint           `gorm:"column:id;primaryKey" json:"id"`
	Judul     string         `gorm:"column:judul;size:255;not null" json:"judul"`
	Deskripsi string         `gorm:"column:deskripsi;type:text" json:"deskripsi"`
	Gambar    string         `gorm:"column:gambar;size:255;not null" json:"gambar"`
	Kategori  string         `gorm:"column:kategori;size:100;index:idx_galleries_kategori" json:"kategori"`
	Tanggal   datatypes.Date `gorm:"column:tanggal;not null" json:"tanggal"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GalleryModel) TableName() string { return "galleries" }
