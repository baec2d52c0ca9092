package window

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
)

// themeFont returns the parsed theme font, parsing it on first use. The
// grid rebuilds one label per string, so the parse result is kept around.
func (mw *MainWindow) themeFont() *truetype.Font {
	if mw.labelFont != nil {
		return mw.labelFont
	}
	f, err := freetype.ParseFont(theme.DefaultTextFont().Content())
	if err != nil {
		mw.log.Warn("failed to parse theme font", zap.Error(err))
		return nil
	}
	mw.labelFont = f
	return f
}

// rotatedLabel creates a rotated text image (CCW, bottom-to-top) using
// freetype, for the string-name headers of the vertical layout
func (mw *MainWindow) rotatedLabel(text string) *canvas.Image {
	f := mw.themeFont()
	if f == nil {
		return canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	}

	fontSize := float64(12)
	dpi := float64(72)

	c := freetype.NewContext()
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetDPI(dpi)

	opts := truetype.Options{Size: fontSize, DPI: dpi}
	face := truetype.NewFace(f, &opts)
	defer face.Close()

	// Measure text width
	textWidth := 0
	for _, r := range text {
		adv, ok := face.GlyphAdvance(r)
		if ok {
			textWidth += adv.Round()
		}
	}

	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()
	ascent := metrics.Ascent.Ceil()

	padding := 2
	imgWidth := textWidth + padding*2
	imgHeight := textHeight + padding*2

	srcImg := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	textColor := theme.ForegroundColor()

	c.SetClip(srcImg.Bounds())
	c.SetDst(srcImg)
	c.SetSrc(image.NewUniform(textColor))

	pt := freetype.Pt(padding, padding+ascent)
	if _, err := c.DrawString(text, pt); err != nil {
		mw.log.Warn("failed to draw label", zap.String("text", text), zap.Error(err))
	}

	// Rotate pixels 90 deg CCW: (x,y) -> (y, width-1-x)
	rotatedImg := image.NewRGBA(image.Rect(0, 0, imgHeight, imgWidth))
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			rotatedImg.Set(y, imgWidth-1-x, srcImg.At(x, y))
		}
	}

	canvasImg := canvas.NewImageFromImage(rotatedImg)
	canvasImg.SetMinSize(fyne.NewSize(float32(imgHeight), float32(imgWidth)))
	canvasImg.FillMode = canvas.ImageFillOriginal
	return canvasImg
}
