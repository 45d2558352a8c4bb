package model

import "time"

type AdminModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Nama      string    `gorm:"column:nama;size:255;not null" json:"nama"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex:uq_admins_email" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminModel) TableName() string { return "admins" }
