package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"desa_digital_backend/internals/configs"
)

// Storage menyimpan objek dan mengembalikan URL publiknya.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Name() string
}

/* =======================================================================
   Local disk (disajikan oleh static /uploads)
======================================================================= */

type LocalStorage struct {
	Dir        string
	PublicBase string
}

func NewLocalStorage(dir, publicBase string) *LocalStorage {
	return &LocalStorage{Dir: dir, PublicBase: strings.TrimRight(publicBase, "/")}
}

func (s *LocalStorage) Name() string { return "local" }

func (s *LocalStorage) Put(ctx context.Context, key string, r io.Reader, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean := filepath.Clean("/" + key)
	full := filepath.Join(s.Dir, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("write: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return s.PublicBase + filepath.ToSlash(clean), nil
}

/* =======================================================================
   Alibaba OSS
======================================================================= */

type OSSStorage struct {
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	PublicBase string
}

// NewOSSStorageFromEnv: nil, nil kalau OSS_* belum lengkap (pakai disk lokal).
func NewOSSStorageFromEnv() (*OSSStorage, error) {
	endpoint := strings.TrimSpace(configs.GetEnv("OSS_ENDPOINT"))
	ak := strings.TrimSpace(configs.GetEnv("OSS_ACCESS_KEY_ID"))
	sk := strings.TrimSpace(configs.GetEnv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(configs.GetEnv("OSS_BUCKET"))
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, nil
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	return &OSSStorage{
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		PublicBase: strings.TrimRight(strings.TrimSpace(configs.GetEnv("OSS_PUBLIC_BASE")), "/"),
	}, nil
}

func (s *OSSStorage) Name() string { return "oss" }

func (s *OSSStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, r, opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSStorage) PublicURL(key string) string {
	if s.PublicBase != "" {
		return s.PublicBase + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

// NewStorageFromEnv: OSS bila dikonfigurasi, selain itu disk lokal UPLOAD_DIR.
func NewStorageFromEnv() Storage {
	ossStore, err := NewOSSStorageFromEnv()
	if err != nil {
		log.Printf("[WARN] OSS tidak bisa dipakai, fallback disk lokal: %v", err)
	}
	if ossStore != nil {
		log.Printf("[INFO] ☁️ upload ke OSS bucket %s", ossStore.BucketName)
		return ossStore
	}
	log.Printf("[INFO] 💾 upload ke disk lokal %s", configs.UploadDir)
	return NewLocalStorage(configs.UploadDir, configs.UploadPublicBase)
}
