package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"desa_digital_backend/internals/features/lembaga/organisasi/model"
	"desa_digital_backend/internals/testutil"
)

func seedMembers(t *testing.T, db *gorm.DB, names ...string) []model.OrganisasiModel {
	t.Helper()
	ctx := context.Background()
	out := make([]model.OrganisasiModel, 0, len(names))
	for _, n := range names {
		m := model.OrganisasiModel{Nama: n, Jabatan: "Staf"}
		if err := CreateMember(ctx, db, &m, true); err != nil {
			t.Fatalf("CreateMember %s: %v", n, err)
		}
		out = append(out, m)
	}
	return out
}

func names(rows []model.OrganisasiModel) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Nama
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCreateMemberAutoUrutan(t *testing.T) {
	db := testutil.NewDB(t)
	ms := seedMembers(t, db, "Kades", "Sekdes", "Bendahara")
	for i, m := range ms {
		if m.Urutan != i+1 {
			t.Fatalf("%s urutan = %d, want %d", m.Nama, m.Urutan, i+1)
		}
	}

	explicit := model.OrganisasiModel{Nama: "Kasi", Jabatan: "Kasi", Urutan: 10}
	if err := CreateMember(context.Background(), db, &explicit, false); err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	if explicit.Urutan != 10 {
		t.Fatalf("explicit urutan overwritten: %d", explicit.Urutan)
	}
}

func TestSwapOrder(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ms := seedMembers(t, db, "Kades", "Sekdes", "Bendahara")

	if err := SwapOrder(ctx, db, ms[0].ID, ms[2].ID); err != nil {
		t.Fatalf("SwapOrder: %v", err)
	}

	rows, err := ListMembers(ctx, db)
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if want := []string{"Bendahara", "Sekdes", "Kades"}; !equal(names(rows), want) {
		t.Fatalf("order = %v, want %v", names(rows), want)
	}
	seen := map[int]bool{}
	for _, r := range rows {
		seen[r.Urutan] = true
	}
	if len(seen) != 3 || !seen[1] || !seen[2] || !seen[3] {
		t.Fatalf("urutan set changed: %v", seen)
	}

	if err := SwapOrder(ctx, db, ms[0].ID, 9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMoveMember(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ms := seedMembers(t, db, "A", "B", "C")

	rows, err := MoveMember(ctx, db, ms[2].ID, DirectionUp)
	if err != nil {
		t.Fatalf("MoveMember up: %v", err)
	}
	if want := []string{"A", "C", "B"}; !equal(names(rows), want) {
		t.Fatalf("after up = %v, want %v", names(rows), want)
	}

	rows, err = MoveMember(ctx, db, ms[0].ID, DirectionDown)
	if err != nil {
		t.Fatalf("MoveMember down: %v", err)
	}
	if want := []string{"C", "A", "B"}; !equal(names(rows), want) {
		t.Fatalf("after down = %v, want %v", names(rows), want)
	}

	stored, err := ListMembers(ctx, db)
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if !equal(names(stored), names(rows)) {
		t.Fatalf("stored order %v differs from returned %v", names(stored), names(rows))
	}

	tests := []struct {
		name string
		id   uint
		dir  string
		want error
	}{
		{"top cannot go up", ms[2].ID, DirectionUp, ErrNoNeighbour},
		{"bottom cannot go down", ms[1].ID, DirectionDown, ErrNoNeighbour},
		{"bad direction", ms[0].ID, "left", ErrInvalidDirection},
		{"unknown id", 9999, DirectionUp, gorm.ErrRecordNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MoveMember(ctx, db, tt.id, tt.dir); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMoveMemberWithDuplicateUrutan(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	for _, n := range []string{"X", "Y"} {
		m := model.OrganisasiModel{Nama: n, Jabatan: "Staf", Urutan: 1}
		if err := CreateMember(ctx, db, &m, false); err != nil {
			t.Fatalf("CreateMember: %v", err)
		}
	}
	var y model.OrganisasiModel
	if err := db.Where("nama = ?", "Y").First(&y).Error; err != nil {
		t.Fatalf("lookup: %v", err)
	}

	rows, err := MoveMember(ctx, db, y.ID, DirectionUp)
	if err != nil {
		t.Fatalf("MoveMember: %v", err)
	}
	if want := []string{"Y", "X"}; !equal(names(rows), want) {
		t.Fatalf("order = %v, want %v", names(rows), want)
	}
	if rows[0].Urutan != 1 || rows[1].Urutan != 2 {
		t.Fatalf("not renumbered: %d, %d", rows[0].Urutan, rows[1].Urutan)
	}
}
