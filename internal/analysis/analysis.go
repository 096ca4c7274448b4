// Package analysis defines the AI-backed collaborators used by the API and
// ships simulated implementations that return fixed results after a delay.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

const (
	MaxDietFileSize     = 10 << 20
	MaxProfilePhotoSize = 5 << 20
	MaxBodyPhotoSize    = 10 << 20

	DemoVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
)

var (
	ErrNoPhotos            = errors.New("adicione pelo menos uma foto para análise")
	ErrUnsupportedFileType = errors.New("tipo de arquivo não suportado")
	ErrFileTooLarge        = errors.New("arquivo muito grande")
	ErrVideoNotFound       = errors.New("video not found")
)

// BodyAnalyzer evaluates a set of body photos.
type BodyAnalyzer interface {
	Analyze(ctx context.Context, photos models.PhotoSet) (*models.AnalysisResult, error)
}

// DietExtractor reads logged meals out of an uploaded diet file.
type DietExtractor interface {
	Extract(ctx context.Context, file File) ([]models.MealEntry, error)
}

// VideoFinder looks up a demonstration video for an exercise.
type VideoFinder interface {
	FindVideo(ctx context.Context, exercise string) (string, error)
}

// File is an uploaded document.
type File struct {
	Name        string
	ContentType string
	Size        int64
}

var dietFileTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
}

// ValidateDietFile accepts pdf, jpeg and png files up to 10 MB.
func ValidateDietFile(f File) error {
	if !dietFileTypes[strings.ToLower(f.ContentType)] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFileType, f.ContentType)
	}
	if f.Size > MaxDietFileSize {
		return fmt.Errorf("%w: máximo 10MB", ErrFileTooLarge)
	}
	return nil
}

// ValidateImage accepts any image/* content type up to limit bytes.
func ValidateImage(contentType string, size, limit int64) error {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}
	if size > limit {
		return fmt.Errorf("%w: máximo %dMB", ErrFileTooLarge, limit>>20)
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
