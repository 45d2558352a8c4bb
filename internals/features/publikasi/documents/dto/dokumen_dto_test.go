package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestCreateDokumenRequestValidate(t *testing.T) {
	v := validator.New()
	tests := []struct {
		name    string
		req     CreateDokumenRequest
		wantErr bool
	}{
		{"valid", CreateDokumenRequest{Judul: "Perdes", FilePath: "/uploads/perdes.pdf", Ukuran: 1024}, false},
		{"zero size", CreateDokumenRequest{Judul: "Perdes", FilePath: "/uploads/perdes.pdf"}, false},
		{"negative size", CreateDokumenRequest{Judul: "Perdes", FilePath: "/uploads/perdes.pdf", Ukuran: -1}, true},
		{"blank judul", CreateDokumenRequest{Judul: "  ", FilePath: "/uploads/perdes.pdf"}, true},
		{"missing file", CreateDokumenRequest{Judul: "Perdes"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Normalize()
			if err := req.Validate(v); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateDokumenRequestToUpdates(t *testing.T) {
	v := validator.New()
	judul := "  Perdes Baru "
	neg := int64(-5)

	req := UpdateDokumenRequest{Judul: &judul}
	req.Normalize()
	if err := req.Validate(v); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	got := req.ToUpdates()
	if len(got) != 1 || got["judul"] != "Perdes Baru" {
		t.Fatalf("updates = %v", got)
	}

	bad := UpdateDokumenRequest{Ukuran: &neg}
	bad.Normalize()
	if err := bad.Validate(v); err == nil {
		t.Fatal("negative ukuran accepted")
	}
}
