package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"sync"
)

// MockStorageService is a mock implementation of StorageInterface for testing
type MockStorageService struct {
	uploadedFiles map[string][]byte // map of file URL to content
	failUploads   bool
	counter       int
	mu            sync.RWMutex
}

// NewMockStorageService creates a new mock storage service
func NewMockStorageService() *MockStorageService {
	return &MockStorageService{
		uploadedFiles: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global storage instance for testing
func (m *MockStorageService) SetAsMockForTesting() {
	SetStorageService(m)
}

// FailUploads makes every upload fail
func (m *MockStorageService) FailUploads(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failUploads = fail
}

// UploadFile simulates uploading a file and returns a mock URL
func (m *MockStorageService) UploadFile(fileHeader *multipart.FileHeader) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failUploads {
		return "", fmt.Errorf("mock storage upload failure")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	m.counter++
	url := fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/uploads/mock_%d_%s", m.counter, fileHeader.Filename)
	m.uploadedFiles[url] = content
	return url, nil
}

// DeleteFile simulates deleting a file by URL
func (m *MockStorageService) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.uploadedFiles[fileURL]; !exists {
		return fmt.Errorf("file not found in mock storage: %s", fileURL)
	}
	delete(m.uploadedFiles, fileURL)
	return nil
}

// FileExists checks if a file exists in mock storage
func (m *MockStorageService) FileExists(fileURL string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.uploadedFiles[fileURL]
	return exists
}

// UploadCount returns how many files are currently stored
func (m *MockStorageService) UploadCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.uploadedFiles)
}

// Clear removes all files from mock storage
func (m *MockStorageService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadedFiles = make(map[string][]byte)
	m.failUploads = false
	m.counter = 0
}
