// Package imagesrc resolves header image sources to decoded bitmaps.
package imagesrc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder for header images
	_ "image/jpeg" // JPEG decoder for header images
	_ "image/png"  // PNG decoder for header images
	"os"
	"slices"
	"sync"
)

var (
	// ErrNotFound is returned when a source does not resolve to any image.
	ErrNotFound = errors.New("image not found")
	// ErrDecode is returned when image data cannot be decoded.
	ErrDecode = errors.New("decode image")
)

// Kind distinguishes how a source is resolved.
type Kind int

const (
	// KindFile is an image file on disk.
	KindFile Kind = iota
	// KindResource is an image registered in a Resources set.
	KindResource
)

// Source identifies a header image.
type Source struct {
	Kind Kind
	// Path is used by KindFile.
	Path string
	// Name is used by KindResource.
	Name string
}

// File returns a source for an image file.
func File(path string) Source {
	return Source{Kind: KindFile, Path: path}
}

// Resource returns a source for a registered resource.
func Resource(name string) Source {
	return Source{Kind: KindResource, Name: name}
}

// Key identifies the image; a different key means a different image.
func (s Source) Key() string {
	if s.Kind == KindResource {
		return "res:" + s.Name
	}
	return "file:" + s.Path
}

func (s Source) String() string {
	return s.Key()
}

// Loader resolves a source to a decoded image.
type Loader interface {
	Load(ctx context.Context, src Source) (image.Image, error)
}

// FileLoader decodes images from disk.
type FileLoader struct{}

// Load implements Loader.
func (FileLoader) Load(ctx context.Context, src Source) (image.Image, error) {
	if src.Kind != KindFile {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, src)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, src.Path)
		}
		return nil, fmt.Errorf("read %s: %w", src.Path, err)
	}
	return Decode(data)
}

// Decode decodes JPEG, PNG or GIF data.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrDecode)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, nil
}

// Resources is an in-memory set of named images, safe for concurrent use.
type Resources struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewResources returns an empty resource set.
func NewResources() *Resources {
	return &Resources{images: make(map[string]image.Image)}
}

// Register adds or replaces a named image.
func (r *Resources) Register(name string, img image.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[name] = img
}

// RegisterData decodes and registers encoded image data.
func (r *Resources) RegisterData(name string, data []byte) error {
	img, err := Decode(data)
	if err != nil {
		return err
	}
	r.Register(name, img)
	return nil
}

// Names returns the registered names in no particular order.
func (r *Resources) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.images))
	for name := range r.images {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load implements Loader.
func (r *Resources) Load(ctx context.Context, src Source) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[src.Name]
	if src.Kind != KindResource || !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, src)
	}
	return img, nil
}

// Multi dispatches to a loader per source kind.
type Multi map[Kind]Loader

// Load implements Loader.
func (m Multi) Load(ctx context.Context, src Source) (image.Image, error) {
	l, ok := m[src.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: no loader for %s", ErrNotFound, src)
	}
	return l.Load(ctx, src)
}
