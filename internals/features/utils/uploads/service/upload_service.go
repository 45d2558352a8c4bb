package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("ukuran file melebihi batas")
	ErrUnsupportedType = errors.New("tipe file tidak didukung (gambar, pdf, word, excel)")
	ErrInvalidFolder   = errors.New("folder upload tidak dikenal")
	ErrEmptyFile       = errors.New("file kosong")
)

// Folder yang boleh dipakai klien; key objek = <folder>/<yyyy>/<mm>/<uuid>.<ext>
var allowedFolders = map[string]struct{}{
	"news": {}, "galleries": {}, "events": {}, "organization": {},
	"services": {}, "documents": {}, "submissions": {}, "settings": {}, "misc": {},
}

var imageTypes = map[string]struct{}{
	"image/jpeg": {}, "image/png": {}, "image/gif": {}, "image/webp": {},
}

// dokumen disimpan apa adanya
var documentTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/vnd.ms-excel": ".xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
}

type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Storage     string `json:"storage"`
}

type UploadService struct {
	Storage  Storage
	MaxBytes int64
	WebP     WebPOptions
	Now      func() time.Time
}

func NewUploadService(store Storage, maxBytes int64) *UploadService {
	return &UploadService{Storage: store, MaxBytes: maxBytes, WebP: DefaultWebPOptions, Now: time.Now}
}

// Save: cek ukuran → sniff isi (bukan ekstensi) → gambar jadi webp, dokumen apa adanya.
func (s *UploadService) Save(ctx context.Context, folder string, fh *multipart.FileHeader) (*UploadResult, error) {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if folder == "" {
		folder = "misc"
	}
	if _, ok := allowedFolders[folder]; !ok {
		return nil, ErrInvalidFolder
	}
	if fh == nil || fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return nil, ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	var r io.Reader = src
	if s.MaxBytes > 0 {
		r = io.LimitReader(src, s.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if s.MaxBytes > 0 && int64(len(data)) > s.MaxBytes {
		return nil, ErrFileTooLarge
	}
	return s.SaveBytes(ctx, folder, data)
}

func (s *UploadService) SaveBytes(ctx context.Context, folder string, data []byte) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	mt := mimetype.Detect(data)
	ct := mt.String()
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}

	var ext string
	switch {
	case isImage(ct):
		converted, err := ConvertToWebP(data, ct, s.WebP)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
		}
		data, ct, ext = converted, "image/webp", ".webp"
	default:
		e, ok := documentTypes[ct]
		if !ok {
			return nil, ErrUnsupportedType
		}
		ext = e
	}

	now := s.Now().UTC()
	key := fmt.Sprintf("%s/%s/%s%s", folder, now.Format("2006/01"), uuid.NewString(), ext)
	url, err := s.Storage.Put(ctx, key, bytes.NewReader(data), ct)
	if err != nil {
		return nil, err
	}
	return &UploadResult{
		URL:         url,
		Key:         key,
		ContentType: ct,
		Size:        int64(len(data)),
		Storage:     s.Storage.Name(),
	}, nil
}

func isImage(ct string) bool {
	_, ok := imageTypes[ct]
	return ok
}
