package model

import "time"

// TokenBlacklist menyimpan session token yang sudah logout sampai masa berlakunya habis.
type TokenBlacklist struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Token     string    `gorm:"column:token;type:varchar(512);not null;uniqueIndex:uq_token_blacklist_token" json:"-"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null;index:idx_token_blacklist_expired" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
