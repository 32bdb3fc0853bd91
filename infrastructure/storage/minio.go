package storage

//go:generate mockgen -source=minio.go -destination=mocks/storage.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/config"
)

var ErrInvalidObjectName = errors.New("nome de arquivo inválido")

type ObjectStorage interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, bucket, key string) error
}

// MinioStorage grava os binários e documentos em um bucket compatível com S3
type MinioStorage struct {
	client    *minio.Client
	region    string
	publicURL string
}

func NewMinioStorage(cfg config.Storage) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente de storage: %w", err)
	}

	return &MinioStorage{
		client:    client,
		region:    cfg.Region,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// EnsureBuckets cria os buckets que ainda não existem
func (s *MinioStorage) EnsureBuckets(ctx context.Context, buckets ...string) error {
	for _, bucket := range buckets {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("erro ao verificar bucket %s: %w", bucket, err)
		}

		if exists {
			continue
		}

		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("erro ao criar bucket %s: %w", bucket, err)
		}

		logrus.WithField("bucket", bucket).Info("Bucket criado no storage")
	}

	return nil
}

func (s *MinioStorage) Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) (string, error) {
	info, err := s.client.PutObject(ctx, bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar arquivo %s: %w", key, err)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": bucket,
		"key":    key,
		"size":   info.Size,
	}).Debug("Arquivo enviado ao storage")

	return PublicURL(s.publicURL, bucket, key), nil
}

func (s *MinioStorage) Remove(ctx context.Context, bucket, key string) error {
	return s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

func PublicURL(baseURL, bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"), bucket, key)
}

// ObjectKey monta a chave do objeto no formato <prefixo>/<unix nano>_<nome>,
// recusando nomes que tentem escapar do prefixo
func ObjectKey(prefix, fileName string, now time.Time) (string, error) {
	name := strings.TrimSpace(fileName)
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, "\\") {
		return "", ErrInvalidObjectName
	}

	name = path.Base(strings.ReplaceAll(name, " ", "_"))
	if name == "." || name == "/" {
		return "", ErrInvalidObjectName
	}

	key := fmt.Sprintf("%d_%s", now.UnixNano(), name)
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		key = prefix + "/" + key
	}

	return key, nil
}
