package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"desa_digital_backend/internals/features/publikasi/events/model"
	helper "desa_digital_backend/internals/helpers"
	"desa_digital_backend/internals/helpers/dbtime"
)

/* ===================== Requests ===================== */

type CreateEventRequest struct {
	Judul     string  `json:"judul" validate:"required,max=255"`
	Deskripsi *string `json:"deskripsi"`
	Tanggal   string  `json:"tanggal" validate:"required"`
	Lokasi    *string `json:"lokasi" validate:"omitempty,max=255"`
	Gambar    *string `json:"gambar" validate:"omitempty,max=255"`
}

func (r *CreateEventRequest) Normalize() {
	r.Judul = strings.TrimSpace(r.Judul)
	r.Tanggal = strings.TrimSpace(r.Tanggal)
	r.Deskripsi = helper.TrimPtr(r.Deskripsi)
	r.Lokasi = helper.TrimPtr(r.Lokasi)
	r.Gambar = helper.TrimPtr(r.Gambar)
}

func (r *CreateEventRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateEventRequest) ToModel() (*model.EventModel, error) {
	t, err := helper.ParseDateTime(r.Tanggal)
	if err != nil {
		return nil, err
	}
	return &model.EventModel{
		Judul:     r.Judul,
		Deskripsi: helper.Deref(r.Deskripsi),
		Tanggal:   t.UTC(),
		Lokasi:    helper.Deref(r.Lokasi),
		Gambar:    helper.Deref(r.Gambar),
	}, nil
}

type UpdateEventRequest struct {
	Judul     *string `json:"judul" validate:"omitempty,min=1,max=255"`
	Deskripsi *string `json:"deskripsi"`
	Tanggal   *string `json:"tanggal"`
	Lokasi    *string `json:"lokasi" validate:"omitempty,max=255"`
	Gambar    *string `json:"gambar" validate:"omitempty,max=255"`
}

func (r *UpdateEventRequest) Normalize() {
	r.Judul = helper.TrimPtr(r.Judul)
	r.Tanggal = helper.TrimPtr(r.Tanggal)
	r.Deskripsi = helper.TrimPatch(r.Deskripsi)
	r.Lokasi = helper.TrimPatch(r.Lokasi)
	r.Gambar = helper.TrimPatch(r.Gambar)
}

func (r *UpdateEventRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *UpdateEventRequest) ToUpdates() (map[string]any, error) {
	m := map[string]any{}
	if r.Judul != nil {
		m["judul"] = *r.Judul
	}
	if r.Deskripsi != nil {
		m["deskripsi"] = *r.Deskripsi
	}
	if r.Lokasi != nil {
		m["lokasi"] = *r.Lokasi
	}
	if r.Gambar != nil {
		m["gambar"] = *r.Gambar
	}
	if r.Tanggal != nil {
		t, err := helper.ParseDateTime(*r.Tanggal)
		if err != nil {
			return nil, err
		}
		m["tanggal"] = t.UTC()
	}
	return m, nil
}

/* ===================== Response ===================== */

type EventResponse struct {
	ID         uint      `json:"id"`
	Judul      string    `json:"judul"`
	Deskripsi  string    `json:"deskripsi"`
	Tanggal    time.Time `json:"tanggal"`
	Lokasi     string    `json:"lokasi"`
	Gambar     string    `json:"gambar"`
	IsUpcoming bool      `json:"is_upcoming"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewEventResponse: is_upcoming dihitung saat dibaca (tanggal >= now).
func NewEventResponse(e model.EventModel, now time.Time) EventResponse {
	return EventResponse{
		ID:         e.ID,
		Judul:      e.Judul,
		Deskripsi:  e.Deskripsi,
		Tanggal:    dbtime.ToDesaTime(e.Tanggal),
		Lokasi:     e.Lokasi,
		Gambar:     e.Gambar,
		IsUpcoming: e.IsUpcoming(now),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func NewEventResponses(rows []model.EventModel, now time.Time) []EventResponse {
	out := make([]EventResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, NewEventResponse(e, now))
	}
	return out
}
