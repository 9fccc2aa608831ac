// Package media implements the image upload pipeline: uploads are
// validated, converted to WebP, stored under a deterministic name, and
// bound to the owning entity.
package media

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// MaxUploadBytes is the ceiling on the raw upload body
const MaxUploadBytes = 10 << 20

// MaxStoredBytes is the target ceiling on the converted WebP
const MaxStoredBytes = 1 << 20

// Processor converts uploaded images to WebP within a byte budget
type Processor interface {
	// Convert re-encodes the image as WebP, stepping down quality and
	// dimensions until the result fits maxBytes or options run out.
	Convert(data []byte, maxBytes int) ([]byte, error)
}

// ImageStore persists converted images and returns their public path
type ImageStore interface {
	// Save writes the image under the given file name, replacing any
	// previous file of the same name, and returns the stored path.
	Save(ctx context.Context, fileName string, data []byte) (string, error)
	// Delete removes a stored image. Missing files are not an error.
	Delete(ctx context.Context, path string) error
}

// Binder attaches a stored image path to the owning entity
type Binder interface {
	// Exists reports whether the entity is present; returns the
	// repository's not-found error otherwise.
	Exists(ctx context.Context, id uuid.UUID) error
	// SetImage records the stored path on the entity.
	SetImage(ctx context.Context, id uuid.UUID, path string) error
}

// profile ties an entity kind to its file name prefix and binder
type profile struct {
	prefix string
	binder Binder
}

// UploadResponse reports where an uploaded image was stored
type UploadResponse struct {
	EntityKind string    `json:"entity_kind"`
	EntityID   uuid.UUID `json:"entity_id"`
	Path       string    `json:"path"`
	Size       int       `json:"size"`
}

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// ImageService handles image uploads for every image-bearing entity
type ImageService struct {
	processor Processor
	store     ImageStore
	profiles  map[string]profile
}

// NewImageService creates an ImageService with no registered kinds
func NewImageService(processor Processor, store ImageStore) *ImageService {
	return &ImageService{
		processor: processor,
		store:     store,
		profiles:  make(map[string]profile),
	}
}

// Register adds an entity kind to the upload pipeline. The prefix
// determines the stored file name: <prefix>_<id>.webp.
func (s *ImageService) Register(kind, prefix string, binder Binder) {
	s.profiles[kind] = profile{prefix: prefix, binder: binder}
}

// Upload validates, converts, stores, and binds an image. Uploading
// again for the same entity overwrites the previous file.
func (s *ImageService) Upload(ctx context.Context, kind string, entityID uuid.UUID, data []byte) (*UploadResponse, error) {
	p, ok := s.profiles[kind]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown entity kind %q", kind))
	}
	if entityID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Entity ID is required")
	}
	if len(data) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Image data is required")
	}
	if len(data) > MaxUploadBytes {
		return nil, shared.NewDomainError("INVALID_INPUT", "Image exceeds the 10MB upload limit")
	}

	contentType := http.DetectContentType(data)
	if _, ok := allowedContentTypes[contentType]; !ok {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("Unsupported image type %s; expected JPEG, PNG, or WebP", contentType))
	}

	if err := p.binder.Exists(ctx, entityID); err != nil {
		return nil, err
	}

	converted, err := s.processor.Convert(data, MaxStoredBytes)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("%s_%s.webp", p.prefix, entityID)
	path, err := s.store.Save(ctx, fileName, converted)
	if err != nil {
		return nil, err
	}

	if err := p.binder.SetImage(ctx, entityID, path); err != nil {
		return nil, err
	}

	return &UploadResponse{
		EntityKind: kind,
		EntityID:   entityID,
		Path:       path,
		Size:       len(converted),
	}, nil
}
