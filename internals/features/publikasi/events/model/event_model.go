package model

import "time"

type EventModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Judul     string    `gorm:"column:judul;size:255;not null" json:"judul"`
	Deskripsi string    `gorm:"column:deskripsi;type:text" json:"deskripsi"`
	Tanggal   time.Time `gorm:"column:tanggal;not null;index:idx_events_tanggal" json:"tanggal"`
	Lokasi    string    `gorm:"column:lokasi;size:255" json:"lokasi"`
	Gambar    string    `gorm:"column:gambar;size:255" json:"gambar"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EventModel) TableName() string { return "events" }

// IsUpcoming: turunan, tidak disimpan.
func (e EventModel) IsUpcoming(now time.Time) bool {
	return !e.Tanggal.Before(now)
}
