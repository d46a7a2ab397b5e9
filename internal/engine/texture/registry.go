// Package texture manages the scene's 2D textures: decoding image files,
// uploading them to the GPU and mapping string tags to texture units.
package texture

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/candlelight/internal/logger"
)

// entry associates a tag with a GPU texture handle. The slice index of an
// entry is its texture slot: slot numbers are registration order and stay
// stable for the registry's lifetime, since shader samplers refer to them.
type entry struct {
	tag    string
	handle uint32
}

// Registry holds all loaded scene textures in registration order.
type Registry struct {
	entries []entry
}

// NewRegistry returns an empty texture registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Load decodes the image at path and registers it under tag.
// The texture is uploaded with repeat wrapping, trilinear minification,
// linear magnification and generated mipmaps. Images with a channel count
// other than 3 or 4 are rejected.
func (r *Registry) Load(path, tag string) error {
	img, channels, err := decodeFile(path)
	if err != nil {
		return fmt.Errorf("loading texture %s: %w", path, err)
	}

	width := int32(img.Bounds().Dx())
	height := int32(img.Bounds().Dy())

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	internalFormat := int32(gl.RGB8)
	if channels == 4 {
		internalFormat = gl.RGBA8
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height,
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.add(tag, handle)

	logger.Info("loaded texture",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.Int("channels", channels),
	)
	return nil
}

// add appends a tag/handle pair; the new entry's slot is its index.
func (r *Registry) add(tag string, handle uint32) {
	r.entries = append(r.entries, entry{tag: tag, handle: handle})
}

// BindAll binds every registered texture to the texture unit matching its
// slot. A no-op for an empty registry.
func (r *Registry) BindAll() {
	for i, e := range r.entries {
		gl.ActiveTexture(uint32(gl.TEXTURE0 + i))
		gl.BindTexture(gl.TEXTURE_2D, e.handle)
	}
}

// FindHandle returns the GPU handle registered under tag.
// The second return value reports whether the tag was found.
func (r *Registry) FindHandle(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.handle, true
		}
	}
	return 0, false
}

// FindSlot returns the texture slot registered under tag, or -1 if the tag
// is unknown. Slot 0 is a valid result; callers that want a slot-0 fallback
// for unknown tags must apply it themselves.
func (r *Registry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.tag == tag {
			return i
		}
	}
	return -1
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// DestroyAll releases every GPU handle and resets the registry.
// Safe to call more than once.
func (r *Registry) DestroyAll() {
	for i := range r.entries {
		if r.entries[i].handle != 0 {
			gl.DeleteTextures(1, &r.entries[i].handle)
		}
	}
	r.entries = nil
}
