package utils

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUploadFile(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		size         int64
		expectError  bool
		expectedCode string
	}{
		{"png accepted", "photo.png", 1024, false, ""},
		{"jpg accepted", "photo.jpg", 1024, false, ""},
		{"jpeg accepted", "photo.jpeg", 1024, false, ""},
		{"pdf accepted", "certificate.pdf", 1024, false, ""},
		{"uppercase extension accepted", "PHOTO.PNG", 1024, false, ""},
		{"executable rejected", "malware.exe", 1024, true, "INVALID_FILE_FORMAT"},
		{"no extension rejected", "README", 1024, true, "INVALID_FILE_FORMAT"},
		{"at size limit accepted", "big.pdf", MaxFileSize, false, ""},
		{"over size limit rejected", "huge.pdf", MaxFileSize + 1, true, "FILE_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileHeader := &multipart.FileHeader{Filename: tt.filename, Size: tt.size}

			err := ValidateUploadFile(fileHeader)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			var uploadErr *FileUploadError
			assert.ErrorAs(t, err, &uploadErr)
			assert.Equal(t, tt.expectedCode, uploadErr.Code)
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "491701234567", DigitsOnly("+49 170 1234567"))
	assert.Equal(t, "00491701234567", DigitsOnly("0049-170/1234567"))
	assert.Equal(t, "", DigitsOnly("no digits here"))
	assert.Equal(t, "12345", DigitsOnly("12345"))
}
