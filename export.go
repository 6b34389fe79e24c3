package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	captionHeight   = 20
	captionFontSize = 12.0
)

// ExportPNG writes img with a caption band underneath describing the view.
func ExportPNG(filename string, img *image.RGBA, caption string) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("nothing to export")
	}
	imageWidth := img.Bounds().Dx()
	imageHeight := img.Bounds().Dy() + captionHeight

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.Black)
	dc.Clear()
	dc.DrawImage(img, 0, 0)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    captionFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(caption, 4, float64(img.Bounds().Dy())+captionHeight/2, 0, 0.5)

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

func exportCaption(area Area, f Fractal, depth int) string {
	return fmt.Sprintf("%s  area=%s  depth=%d", fractalOrDefault(f), area, depth)
}
