package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	ftypes "github.com/h2non/filetype/types"
)

// allowedFileTypes maps accepted MIME values (validated via magic-number
// signatures, never trusted from headers) to their extensions.
var allowedFileTypes = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
	"video/mp4":  {".mp4"},
}

var allowedExtToMIME = map[string][]string{
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
	".webp": {"image/webp"},
	".mp4":  {"video/mp4"},
}

// DetectFileType sniffs the real MIME type from the file header and
// resets the reader.
func DetectFileType(file multipart.File) (ftypes.Type, error) {
	// filetype needs at least 262 bytes of header.
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return ftypes.Unknown, fmt.Errorf("unable to read file header: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return ftypes.Unknown, fmt.Errorf("unable to reset file reader: %w", err)
	}

	kind, err := filetype.Match(buf[:n])
	if err != nil {
		return ftypes.Unknown, fmt.Errorf("file type detection failed: %w", err)
	}

	return kind, nil
}

// StorageService stores uploaded media on local disk under a per-user
// directory and hands back publicly servable URLs.
type StorageService struct {
	uploadDir    string
	baseURL      string
	maxImageSize int64
	maxVideoSize int64
}

func NewStorageService(uploadDir, baseURL string, maxImageSize, maxVideoSize int64) (*StorageService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, err
	}

	return &StorageService{
		uploadDir:    uploadDir,
		baseURL:      baseURL,
		maxImageSize: maxImageSize,
		maxVideoSize: maxVideoSize,
	}, nil
}

func (s *StorageService) SaveFile(file multipart.File, header *multipart.FileHeader, userID string) (*models.Media, error) {
	if header.Size == 0 {
		return nil, fmt.Errorf("empty files are not allowed")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	acceptableMIMEs, extAllowed := allowedExtToMIME[ext]
	if !extAllowed {
		return nil, fmt.Errorf("file extension %q is not allowed", ext)
	}

	kind, err := DetectFileType(file)
	if err != nil {
		return nil, err
	}

	detectedMIME := kind.MIME.Value
	if _, ok := allowedFileTypes[detectedMIME]; kind == ftypes.Unknown || !ok {
		return nil, fmt.Errorf("file content does not match any allowed type (detected %q)", detectedMIME)
	}

	// The extension must agree with the sniffed content type.
	mimeMatchesExt := false
	for _, m := range acceptableMIMEs {
		if m == detectedMIME {
			mimeMatchesExt = true
			break
		}
	}
	if !mimeMatchesExt {
		return nil, fmt.Errorf("file extension %s does not match detected content type %s", ext, detectedMIME)
	}

	mediaType := models.MediaImage
	maxSize := s.maxImageSize
	if strings.HasPrefix(detectedMIME, "video/") {
		mediaType = models.MediaVideo
		maxSize = s.maxVideoSize
	}
	if header.Size > maxSize {
		return nil, fmt.Errorf("%s size %d bytes exceeds the %d MB limit", mediaType, header.Size, maxSize/(1<<20))
	}

	// Discard the client-supplied name; keep only the validated extension.
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, fmt.Errorf("failed to generate filename: %w", err)
	}
	filename := hex.EncodeToString(randomBytes) + ext

	userDir := filepath.Join(s.uploadDir, userID)
	if err := os.MkdirAll(userDir, 0755); err != nil {
		return nil, err
	}

	filePath := filepath.Join(userDir, filename)
	dst, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	// Limit the copy so a tampered Content-Length can't blow past the cap.
	written, err := io.Copy(dst, io.LimitReader(file, maxSize+1))
	if err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("error writing file: %w", err)
	}
	if written > maxSize {
		os.Remove(filePath)
		return nil, fmt.Errorf("file stream exceeded the %d MB limit", maxSize/(1<<20))
	}

	media := &models.Media{
		ID:        uuid.New().String(),
		UserID:    userID,
		Filename:  filename,
		Path:      filePath,
		URL:       fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, userID, filename),
		Type:      mediaType,
		Size:      written,
		MimeType:  detectedMIME,
		CreatedAt: time.Now(),
	}

	return media, nil
}

func (s *StorageService) DeleteFile(media *models.Media) error {
	return os.Remove(media.Path)
}
