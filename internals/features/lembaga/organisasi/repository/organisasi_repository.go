package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"desa_digital_backend/internals/features/lembaga/organisasi/model"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

var (
	ErrNoNeighbour      = errors.New("tidak ada anggota di posisi tujuan")
	ErrInvalidDirection = errors.New("direction harus up atau down")
)

const renderOrder = "urutan ASC, id ASC"

// ListMembers: urutan tampil = (urutan, id).
func ListMembers(ctx context.Context, db *gorm.DB) ([]model.OrganisasiModel, error) {
	rows := []model.OrganisasiModel{}
	if err := db.WithContext(ctx).Order(renderOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func GetMember(ctx context.Context, db *gorm.DB, id uint) (*model.OrganisasiModel, error) {
	var m model.OrganisasiModel
	if err := db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMember: autoUrutan=true → urutan = MAX(urutan)+1.
func CreateMember(ctx context.Context, db *gorm.DB, m *model.OrganisasiModel, autoUrutan bool) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if autoUrutan {
			var maxUrutan int
			if err := tx.Model(&model.OrganisasiModel{}).
				Select("COALESCE(MAX(urutan), 0)").
				Scan(&maxUrutan).Error; err != nil {
				return err
			}
			m.Urutan = maxUrutan + 1
		}
		return tx.Create(m).Error
	})
}

func UpdateMember(ctx context.Context, db *gorm.DB, id uint, updates map[string]any) (*model.OrganisasiModel, error) {
	var out model.OrganisasiModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&out).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&out, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func DeleteMember(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&model.OrganisasiModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SwapOrder menukar nilai urutan dua anggota dalam satu transaksi.
func SwapOrder(ctx context.Context, db *gorm.DB, firstID, secondID uint) error {
	if firstID == secondID {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pair []model.OrganisasiModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", []uint{firstID, secondID}).
			Find(&pair).Error; err != nil {
			return err
		}
		if len(pair) != 2 {
			return gorm.ErrRecordNotFound
		}
		a, b := pair[0], pair[1]
		if err := tx.Model(&model.OrganisasiModel{}).Where("id = ?", a.ID).
			UpdateColumn("urutan", b.Urutan).Error; err != nil {
			return err
		}
		return tx.Model(&model.OrganisasiModel{}).Where("id = ?", b.ID).
			UpdateColumn("urutan", a.Urutan).Error
	})
}

// MoveMember memindah anggota satu langkah (up/down) dalam urutan tampil.
// Daftar dinomori ulang 1..n agar urutan yang kembar tetap bisa digeser.
func MoveMember(ctx context.Context, db *gorm.DB, id uint, direction string) ([]model.OrganisasiModel, error) {
	if direction != DirectionUp && direction != DirectionDown {
		return nil, ErrInvalidDirection
	}

	var out []model.OrganisasiModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []model.OrganisasiModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order(renderOrder).Find(&rows).Error; err != nil {
			return err
		}

		idx := -1
		for i := range rows {
			if rows[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return gorm.ErrRecordNotFound
		}

		target := idx - 1
		if direction == DirectionDown {
			target = idx + 1
		}
		if target < 0 || target >= len(rows) {
			return ErrNoNeighbour
		}
		rows[idx], rows[target] = rows[target], rows[idx]

		for i := range rows {
			want := i + 1
			if rows[i].Urutan == want {
				continue
			}
			if err := tx.Model(&model.OrganisasiModel{}).Where("id = ?", rows[i].ID).
				UpdateColumn("urutan", want).Error; err != nil {
				return err
			}
			rows[i].Urutan = want
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
