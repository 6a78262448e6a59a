// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	safeFilename := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, safeFilename)
}

// ConvertImageToWebp membuka upload multipart, decode (jpeg/png/webp),
// resize maksimal maxWidth px (proporsional), lalu encode webp.
func ConvertImageToWebp(fileHeader *multipart.FileHeader, maxWidth int) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("gagal decode gambar: %w", err)
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveUploadBytes menulis hasil konversi ke direktori upload lokal dan
// mengembalikan path relatif yang bisa disajikan static handler.
func SaveUploadBytes(folder, originalFilename string, data []byte) (string, error) {
	base := os.Getenv("UPLOAD_DIR")
	if base == "" {
		base = "./uploads"
	}

	rel := GenerateUniqueFilename(folder, originalFilename)
	full := filepath.Join(base, rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat direktori upload: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}
	return rel, nil
}
