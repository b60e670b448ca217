package extract

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

// Service turns an uploaded study document into plain text. PDFs are parsed
// in-process; textual formats are read directly. Office formats (DOCX, PPTX)
// are converted to PDF by the client before upload, so they never reach this
// service in binary form.
type Service struct {
	uploadDir string
}

func NewService(uploadDir string) (*Service, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure upload dir %s: %w", uploadDir, err)
	}
	return &Service{uploadDir: uploadDir}, nil
}

// ExtractText stores the upload under a unique name and extracts its text.
// The stored copy is removed once extraction finishes.
func (s *Service) ExtractText(file multipart.File, fileName string, fileType string) (string, error) {
	storedPath, err := s.storeUpload(file, fileName)
	if err != nil {
		return "", err
	}
	defer os.Remove(storedPath)

	if isPDF(fileName, fileType) {
		text, err := s.extractPDFText(storedPath)
		if err != nil {
			return "", err
		}
		return text, nil
	}

	data, err := os.ReadFile(storedPath)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	return string(data), nil
}

func (s *Service) storeUpload(file multipart.File, fileName string) (string, error) {
	storedName := uuid.NewString() + filepath.Ext(fileName)
	storedPath := filepath.Join(s.uploadDir, storedName)

	out, err := os.Create(storedPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(storedPath)
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	log.Printf("[INFO] Stored upload %q as %s", fileName, storedName)
	return storedPath, nil
}

func (s *Service) extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var content strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("[ERROR] Failed to extract text from pdf page %d: %v", pageNum, err)
			continue
		}
		content.WriteString(text)
		content.WriteString("\n")
	}

	extracted := strings.TrimSpace(content.String())
	if extracted == "" {
		return "", fmt.Errorf("pdf contains no extractable text")
	}

	return extracted, nil
}

func isPDF(fileName string, fileType string) bool {
	if strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return true
	}
	return strings.Contains(strings.ToLower(fileType), "pdf")
}
