package repository

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	layananModel "desa_digital_backend/internals/features/layanan/services/model"
	"desa_digital_backend/internals/features/layanan/submissions/model"
	helper "desa_digital_backend/internals/helpers"
	"desa_digital_backend/internals/helpers/dbtime"
)

const maxNumberAttempts = 3

var (
	ErrInvalidStatus   = errors.New("status tidak dikenal (pending|diproses|selesai|ditolak)")
	ErrNumberExhausted = errors.New("gagal membuat nomor pengajuan unik")
)

// diganti di test untuk mensimulasikan tabrakan nomor
var generateNumber = helper.GenerateSubmissionNumber

type SubmissionFilter struct {
	Status    string
	LayananID uint
	Q         string
}

// CreateSubmission: layanan harus ada (→ gorm.ErrRecordNotFound), status selalu pending.
// Nomor bentrok (unique index) dibuat ulang, maksimal 3 percobaan.
func CreateSubmission(ctx context.Context, db *gorm.DB, p *model.PengajuanLayananModel, now time.Time) error {
	var layanan layananModel.LayananModel
	if err := db.WithContext(ctx).Select("id", "nama").First(&layanan, p.LayananID).Error; err != nil {
		return err
	}

	p.Status = model.StatusPending
	p.Catatan = nil
	p.Layanan = nil

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		nomor, err := generateNumber(dbtime.ToDesaTime(now))
		if err != nil {
			return err
		}
		p.ID = 0
		p.NomorPengajuan = nomor

		err = db.WithContext(ctx).Omit("Layanan").Create(p).Error
		if err == nil {
			p.Layanan = &layanan
			return nil
		}
		if helper.IsForeignKeyViolation(err) {
			return gorm.ErrRecordNotFound
		}
		if !helper.IsDuplicateKey(err) {
			return err
		}
		log.Printf("[WARN] nomor pengajuan %s bentrok (percobaan %d)", nomor, attempt)
	}
	return ErrNumberExhausted
}

func ListSubmissions(ctx context.Context, db *gorm.DB, f SubmissionFilter, p helper.Paging) ([]model.PengajuanLayananModel, helper.Pagination, error) {
	q := db.WithContext(ctx).Model(&model.PengajuanLayananModel{})
	if f.Status != "" {
		st, ok := model.NormalizeStatus(f.Status)
		if !ok {
			return nil, helper.Pagination{}, ErrInvalidStatus
		}
		q = q.Where("status = ?", st)
	}
	if f.LayananID > 0 {
		q = q.Where("layanan_id = ?", f.LayananID)
	}
	if s := strings.TrimSpace(f.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(nama) LIKE ? OR nik LIKE ? OR LOWER(nomor_pengajuan) LIKE ?", like, like, like)
	}
	return helper.Paginate[model.PengajuanLayananModel](q.Preload("Layanan"), p, "created_at DESC, id DESC")
}

// GetSubmissionByNumber untuk pelacakan publik.
func GetSubmissionByNumber(ctx context.Context, db *gorm.DB, nomor string) (*model.PengajuanLayananModel, error) {
	var out model.PengajuanLayananModel
	err := db.WithContext(ctx).
		Preload("Layanan").
		Where("nomor_pengajuan = ?", strings.ToUpper(strings.TrimSpace(nomor))).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSubmissionStatus menerima alias Inggris; catatan nil = tidak diubah.
func UpdateSubmissionStatus(ctx context.Context, db *gorm.DB, id uint, status string, catatan *string) (*model.PengajuanLayananModel, error) {
	st, ok := model.NormalizeStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}
	updates := map[string]any{"status": st}
	if catatan != nil {
		updates["catatan"] = *catatan
	}

	var out model.PengajuanLayananModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&out).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Preload("Layanan").First(&out, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
