package model

import "time"

type DokumenModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Judul     string    `gorm:"column:judul;size:255;not null" json:"judul"`
	Deskripsi string    `gorm:"column:deskripsi;type:text" json:"deskripsi"`
	FilePath  string    `gorm:"column:file_path;size:255;not null" json:"file_path"`
	Kategori  string    `gorm:"column:kategori;size:100;index:idx_dokumen_kategori" json:"kategori"`
	Ukuran    int64     `gorm:"column:ukuran" json:"ukuran"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DokumenModel) TableName() string { return "dokumen" }
