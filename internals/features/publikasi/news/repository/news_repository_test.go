package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/news/model"
	helper "desa_digital_backend/internals/helpers"
	"desa_digital_backend/internals/testutil"
)

func newNews(judul, status string, day int) *model.NewsModel {
	return &model.NewsModel{
		Judul:   judul,
		Konten:  "<p>isi</p>",
		Tanggal: datatypes.Date(time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)),
		Penulis: "Admin Desa",
		Status:  status,
	}
}

func TestCreateNewsSlug(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	n := newNews("Jalan Desa Selesai!", model.NewsStatusPublished, 1)
	if err := CreateNews(ctx, db, n); err != nil {
		t.Fatalf("CreateNews: %v", err)
	}
	if n.Slug != "jalan-desa-selesai" {
		t.Fatalf("slug = %q", n.Slug)
	}

	got, err := GetNewsBySlug(ctx, db, "jalan-desa-selesai", false)
	if err != nil {
		t.Fatalf("GetNewsBySlug: %v", err)
	}
	if got.ID != n.ID {
		t.Fatalf("got id %d, want %d", got.ID, n.ID)
	}

	dup := newNews("Jalan desa selesai", model.NewsStatusDraft, 2)
	if err := CreateNews(ctx, db, dup); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}

	if err := CreateNews(ctx, db, newNews("???", model.NewsStatusDraft, 3)); !errors.Is(err, ErrEmptySlug) {
		t.Fatalf("expected ErrEmptySlug, got %v", err)
	}
}

func TestCreateNewsDefaultsToDraft(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	n := newNews("Rapat RT", "", 1)
	if err := CreateNews(ctx, db, n); err != nil {
		t.Fatalf("CreateNews: %v", err)
	}
	if n.Status != model.NewsStatusDraft {
		t.Fatalf("status = %q, want draft", n.Status)
	}
	if _, err := GetNewsBySlug(ctx, db, n.Slug, false); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("draft must be hidden from public lookup, got %v", err)
	}
	if _, err := GetNewsBySlug(ctx, db, n.Slug, true); err != nil {
		t.Fatalf("admin lookup: %v", err)
	}
}

func TestListNewsPagination(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		if err := CreateNews(ctx, db, newNews(fmt.Sprintf("Berita ke %d", i), model.NewsStatusPublished, i)); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	rows, meta, err := ListNews(ctx, db, NewsFilter{Status: model.NewsStatusPublished}, helper.NewPaging(3, 10))
	if err != nil {
		t.Fatalf("ListNews: %v", err)
	}
	if meta.Total != 25 || meta.TotalPages != 3 || meta.Page != 3 || meta.Limit != 10 {
		t.Fatalf("unexpected meta %+v", meta)
	}
	if len(rows) != 5 {
		t.Fatalf("page 3 has %d rows, want 5", len(rows))
	}

	first, _, err := ListNews(ctx, db, NewsFilter{}, helper.NewPaging(1, 10))
	if err != nil {
		t.Fatalf("ListNews page 1: %v", err)
	}
	if first[0].Judul != "Berita ke 25" {
		t.Fatalf("newest first expected, got %q", first[0].Judul)
	}

	empty, meta, err := ListNews(ctx, db, NewsFilter{}, helper.NewPaging(9, 10))
	if err != nil {
		t.Fatalf("ListNews page 9: %v", err)
	}
	if len(empty) != 0 || meta.TotalPages != 3 {
		t.Fatalf("beyond last page: %d rows, meta %+v", len(empty), meta)
	}
}

func TestListNewsFilters(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	for _, n := range []*model.NewsModel{
		newNews("Posyandu Balita", model.NewsStatusPublished, 1),
		newNews("Posyandu Lansia", model.NewsStatusDraft, 2),
		newNews("Kerja Bakti", model.NewsStatusPublished, 3),
	} {
		if err := CreateNews(ctx, db, n); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter NewsFilter
		want   int64
	}{
		{"all", NewsFilter{}, 3},
		{"published", NewsFilter{Status: model.NewsStatusPublished}, 2},
		{"draft", NewsFilter{Status: model.NewsStatusDraft}, 1},
		{"search", NewsFilter{Q: "posyandu"}, 2},
		{"search published", NewsFilter{Status: model.NewsStatusPublished, Q: "POSYANDU"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, meta, err := ListNews(ctx, db, tt.filter, helper.NewPaging(1, 10))
			if err != nil {
				t.Fatalf("ListNews: %v", err)
			}
			if meta.Total != tt.want {
				t.Fatalf("total = %d, want %d", meta.Total, tt.want)
			}
		})
	}
}

func TestUpdateNewsRegeneratesSlug(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	n := newNews("Judul Lama", model.NewsStatusDraft, 1)
	if err := CreateNews(ctx, db, n); err != nil {
		t.Fatalf("CreateNews: %v", err)
	}

	got, err := UpdateNews(ctx, db, n.ID, map[string]any{"judul": "Judul Baru", "status": model.NewsStatusPublished})
	if err != nil {
		t.Fatalf("UpdateNews: %v", err)
	}
	if got.Slug != "judul-baru" || got.Status != model.NewsStatusPublished {
		t.Fatalf("unexpected %+v", got)
	}
	if got.Konten != n.Konten {
		t.Fatalf("konten changed: %q", got.Konten)
	}

	if _, err := UpdateNews(ctx, db, 9999, map[string]any{"konten": "x"}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteNews(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	n := newNews("Hapus Saya", model.NewsStatusDraft, 1)
	if err := CreateNews(ctx, db, n); err != nil {
		t.Fatalf("CreateNews: %v", err)
	}
	if err := DeleteNews(ctx, db, n.ID); err != nil {
		t.Fatalf("DeleteNews: %v", err)
	}
	if err := DeleteNews(ctx, db, n.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}
