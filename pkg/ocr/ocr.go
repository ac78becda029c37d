// Package ocr specifies the boundary to the external text-recognition
// service. The decision core selects an OCRStrategy synchronously; submission,
// concurrency, cancellation, and batching are the service's responsibility.
package ocr

import (
	"context"
	"errors"

	"github.com/goliatone/go-adaptive/pkg/strategy"
)

// Typed failures the recognition service reports. The strategy core never
// raises these; only the asynchronous boundary does.
var (
	ErrInvalidImage        = errors.New("ocr: invalid image")
	ErrTimeout             = errors.New("ocr: recognition timed out")
	ErrUnsupportedLanguage = errors.New("ocr: unsupported language")
	ErrLowConfidence       = errors.New("ocr: confidence below threshold")
)

// Image is an opaque handle to image data. The core never inspects it.
type Image any

// Context carries per-request recognition context.
type Context struct {
	DocumentType  strategy.DocumentType `json:"documentType,omitempty"`
	Languages     []strategy.Language   `json:"languages,omitempty"`
	MinConfidence float64               `json:"minConfidence,omitempty"`
}

// Request pairs an image with the strategy selected for it.
type Request struct {
	Image    Image
	Context  Context
	Strategy strategy.OCRStrategy
}

// Rect is a normalized bounding box in [0,1] image coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Result is a successful recognition outcome.
type Result struct {
	ExtractedText  string                       `json:"extractedText"`
	Confidence     float64                      `json:"confidence"`
	BoundingBoxes  []Rect                       `json:"boundingBoxes,omitempty"`
	TextTypes      map[strategy.TextType]string `json:"textTypes,omitempty"`
	ProcessingTime float64                      `json:"processingTime"`
}

// Outcome is the terminal state of one submission: a result or a typed error.
type Outcome struct {
	Result Result
	Err    error
}

// Service is the asynchronous recognition boundary. Submit returns a channel
// that delivers exactly one Outcome and is then closed. Implementations honor
// context cancellation by delivering ErrTimeout or ctx.Err().
type Service interface {
	Submit(ctx context.Context, req Request) <-chan Outcome
}
