package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestMaskNIK(t *testing.T) {
	tests := map[string]string{
		"3201012345678901": "3201********8901",
		"12345678":         "********",
		"":                 "",
	}
	for in, want := range tests {
		if got := MaskNIK(in); got != want {
			t.Errorf("MaskNIK(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreatePengajuanRequestValidate(t *testing.T) {
	v := validator.New()
	tests := []struct {
		name    string
		req     CreatePengajuanRequest
		wantErr bool
	}{
		{"valid", CreatePengajuanRequest{LayananID: 1, Nama: "Budi", NIK: "3201012345678901"}, false},
		{"nik with spaces", CreatePengajuanRequest{LayananID: 1, Nama: "Budi", NIK: "3201 0123 4567 8901"}, false},
		{"nik too short", CreatePengajuanRequest{LayananID: 1, Nama: "Budi", NIK: "320101"}, true},
		{"nik letters", CreatePengajuanRequest{LayananID: 1, Nama: "Budi", NIK: "32010123456789AB"}, true},
		{"nik negative sign", CreatePengajuanRequest{LayananID: 1, Nama: "Budi", NIK: "-123456789012345"}, true},
		{"nik plus sign", CreatePengajuanRequest{LayananID: 1, Nama: "Budi", NIK: "+123456789012345"}, true},
		{"nik decimal point", CreatePengajuanRequest{LayananID: 1, Nama: "Budi", NIK: "1234567.90123456"}, true},
		{"missing nama", CreatePengajuanRequest{LayananID: 1, Nama: "  ", NIK: "3201012345678901"}, true},
		{"missing layanan", CreatePengajuanRequest{Nama: "Budi", NIK: "3201012345678901"}, true},
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
