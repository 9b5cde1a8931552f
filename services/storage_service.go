package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	appConfig "github.com/care2you/care2you-api/config"
)

// StorageInterface defines the operations against the file store.
// UploadFile returns the public URL of the stored object; DeleteFile removes
// an object by its URL.
type StorageInterface interface {
	UploadFile(fileHeader *multipart.FileHeader) (string, error)
	DeleteFile(fileURL string) error
}

// StorageService handles all file store operations through S3
type StorageService struct {
	client *s3.Client
	bucket string
	region string
}

var storageServiceInstance StorageInterface

// InitStorageService initializes the storage service with the configured credentials
func InitStorageService() (StorageInterface, error) {
	cfg := appConfig.GetConfig()

	// Load AWS configuration with explicit options
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.UsePathStyle = false
	})

	storageServiceInstance = &StorageService{
		client: client,
		bucket: cfg.AWSS3Bucket,
		region: cfg.AWSRegion,
	}

	return storageServiceInstance, nil
}

// GetStorageService returns the initialized storage service instance
func GetStorageService() StorageInterface {
	return storageServiceInstance
}

// SetStorageService sets the storage service instance (primarily for testing)
func SetStorageService(service StorageInterface) {
	storageServiceInstance = service
}

// UploadFile uploads a file to the store and returns its public URL.
// Object keys are generated, never derived from client filenames alone.
func (s *StorageService) UploadFile(fileHeader *multipart.FileHeader) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("file store credentials are not configured")
	}

	// Open the uploaded file
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("warning: failed to close file: %v", closeErr)
		}
	}()

	// Read file content
	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	// Generate unique object key: uploads/{uuid}{ext}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)

	contentType := contentTypeForExt(ext)

	// Upload to the store
	_, err = s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.objectURL(key), nil
}

// DeleteFile deletes an object from the store by its public URL
func (s *StorageService) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}
	if s.bucket == "" {
		return fmt.Errorf("file store credentials are not configured")
	}

	key := s.keyFromURL(fileURL)
	if key == "" {
		return fmt.Errorf("unrecognized file URL: %s", fileURL)
	}

	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// objectURL builds the public URL for an object key
func (s *StorageService) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// keyFromURL extracts the object key from a public URL produced by objectURL
func (s *StorageService) keyFromURL(fileURL string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if !strings.HasPrefix(fileURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(fileURL, prefix)
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
