// Package imaging converts uploaded images to bounded WebP files.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/localmarket/backend/internal/application/media"
	infraconfig "github.com/localmarket/backend/internal/infrastructure/config"
)

// WebPProcessor re-encodes images as WebP under a byte budget. It walks
// a quality ladder first and only shrinks dimensions when the lowest
// quality still exceeds the budget.
type WebPProcessor struct {
	qualityStart int
	qualityMin   int
	qualityStep  int
	dimensions   []int
}

// NewWebPProcessor creates a WebPProcessor from media configuration
func NewWebPProcessor(cfg *infraconfig.MediaConfig) *WebPProcessor {
	p := &WebPProcessor{
		qualityStart: cfg.QualityStart,
		qualityMin:   cfg.QualityMin,
		qualityStep:  cfg.QualityStep,
		dimensions:   cfg.MaxDimensions,
	}
	if p.qualityStart <= 0 {
		p.qualityStart = 80
	}
	if p.qualityMin <= 0 {
		p.qualityMin = 20
	}
	if p.qualityStep <= 0 {
		p.qualityStep = 10
	}
	if len(p.dimensions) == 0 {
		p.dimensions = []int{1200, 1000, 800}
	}
	return p
}

// Convert decodes the image and re-encodes it as WebP within maxBytes.
// When even the smallest dimension at the lowest quality stays over the
// budget, the smallest encoding produced is returned.
func (p *WebPProcessor) Convert(data []byte, maxBytes int) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var smallest []byte
	for _, dim := range p.dimensions {
		resized := fitWithin(src, dim)

		for quality := p.qualityStart; quality >= p.qualityMin; quality -= p.qualityStep {
			encoded, err := encodeWebP(resized, quality)
			if err != nil {
				return nil, err
			}
			if len(encoded) <= maxBytes {
				return encoded, nil
			}
			if smallest == nil || len(encoded) < len(smallest) {
				smallest = encoded
			}
		}
	}

	return smallest, nil
}

// fitWithin scales the image down so neither side exceeds maxDim.
// Smaller images pass through untouched.
func fitWithin(src image.Image, maxDim int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return src
	}
	return imaging.Fit(src, maxDim, maxDim, imaging.Lanczos)
}

func encodeWebP(src image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure WebPProcessor implements media.Processor
var _ media.Processor = (*WebPProcessor)(nil)
