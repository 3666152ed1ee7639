package asset

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

const thumbnailSize = 320

// CreateThumbnail decodes the image at srcPath and writes a 320x320 PNG
// to dstPath. The source aspect ratio is not preserved.
func CreateThumbnail(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open source image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	thumb := image.NewRGBA(image.Rect(0, 0, thumbnailSize, thumbnailSize))
	draw.CatmullRom.Scale(thumb, thumb.Bounds(), img, img.Bounds(), draw.Src, nil)

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer dst.Close()

	if err := png.Encode(dst, thumb); err != nil {
		os.Remove(dstPath)
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}
