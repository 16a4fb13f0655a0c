package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mdhaziqomar/memories/config"

	"github.com/disintegration/imaging"
)

// ThumbnailResult makes the non-fatal nature of thumbnail generation explicit:
// ingestion records Path when Generated is true and logs Err otherwise.
type ThumbnailResult struct {
	Generated bool
	Path      string
	Err       error
}

// Thumbnailer decodes source images and produces bounded derived assets.
type Thumbnailer interface {
	Dimensions(srcPath string) (int, int, error)
	Create(srcPath string, dstPath string) error
}

type ImagingThumbnailer struct{}

func (ImagingThumbnailer) Dimensions(srcPath string) (int, int, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return 0, 0, err
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// Create writes a cover-cropped thumbnail of the configured box size.
func (ImagingThumbnailer) Create(srcPath string, dstPath string) error {
	cfg := config.AppConfig

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create thumbnail dir failed: %w", err)
	}

	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("decode image failed: %w", err)
	}

	thumb := imaging.Fill(img, cfg.Thumbnail.Width, cfg.Thumbnail.Height, imaging.Center, imaging.Lanczos)
	return imaging.Save(thumb, dstPath, imaging.JPEGQuality(cfg.Thumbnail.Quality))
}
