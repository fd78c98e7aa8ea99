package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"noteblog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Storage interface {
	UploadImage(ctx context.Context, ownerID string, fileName string, file io.Reader, size int64) (string, error)
	DeleteImage(ctx context.Context, objectName string) error
	GetImageURL(ctx context.Context, objectName string) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета: %w", err)
		}
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// UploadImage - кладет файл под уникальным именем, чтобы одинаковые имена
// файлов не перетирали друг друга; оригинальное имя уходит в метаданные
func (m *MinIOClient) UploadImage(ctx context.Context, ownerID string, fileName string, file io.Reader, size int64) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("uploads/%s/%d/%02d/%s_%s",
		ownerID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileName)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"owner-id":          ownerID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) GetImageURL(ctx context.Context, objectName string) (string, error) {
	presignedURL, err := m.client.PresignedGetObject(ctx, m.cfg.MinIO.BucketName, objectName,
		m.cfg.MinIO.URLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("ошибка генерации ссылки: %w", err)
	}

	return presignedURL.String(), nil
}
