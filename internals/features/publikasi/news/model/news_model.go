package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	NewsStatusPublished = "published"
	NewsStatusDraft     = "draft"
)

type NewsModel struct {
	ID        uint           `gorm:"column:id;primaryKey" json:"id"`
	Judul     string         `gorm:"column:judul;size:255;not null" json:"judul"`
	Slug      string         `gorm:"column:slug;size:255;not null;uniqueIndex:uq_news_slug" json:"slug"`
	Konten    string         `gorm:"column:konten;type:text;not null" json:"konten"`
	Gambar    string         `gorm:"column:gambar;size:255" json:"gambar"`
	Tanggal   datatypes.Date `gorm:"column:tanggal;not null;index:idx_news_tanggal" json:"tanggal"`
	Penulis   string         `gorm:"column:penulis;size:255;not null" json:"penulis"`
	Status    string         `gorm:"column:status;size:16;not null;default:draft;index:idx_news_status;check:chk_news_status,status IN ('published','draft')" json:"status"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NewsModel) TableName() string { return "news" }

func IsValidNewsStatus(s string) bool {
	return s == NewsStatusPublished || s == NewsStatusDraft
}
