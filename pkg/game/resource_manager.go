package game

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/breakout/pkg/collision"
	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager is responsible for centralized management of game resources.
// It loads sprite images, builds their collision masks exactly once, and
// creates audio players for sound effects.
//
// Missing or unreadable asset files are not fatal: the manager logs a warning
// and substitutes a generated sprite (see sprite_factory.go) or a generated
// tone (see tone.go), so the game stays playable without an assets directory.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the main
// goroutine before the game loop starts.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	sprites, err := rm.LoadSpriteSet(cfg)
type ResourceManager struct {
	sourceCache  map[string]image.Image     // Cache for decoded (or generated) images: path -> image
	imageCache   map[string]*ebiten.Image   // Cache for GPU images: path -> Image
	maskCache    map[string]*collision.Mask // Cache for collision masks: path -> Mask
	audioCache   map[string]*audio.Player   // Cache for sound effect players: sound ID -> Player
	soundPaths   map[string]string          // Sound ID -> file path
	audioContext *audio.Context             // May be nil (no audio output)

	// headless skips ebiten.Image creation; sprites carry masks only.
	headless bool
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter may be nil, in which case sound loading fails
// and AudioManager stays silent.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		sourceCache:  make(map[string]image.Image),
		imageCache:   make(map[string]*ebiten.Image),
		maskCache:    make(map[string]*collision.Mask),
		audioCache:   make(map[string]*audio.Player),
		soundPaths:   make(map[string]string),
		audioContext: audioContext,
	}
}

// NewHeadlessResourceManager creates a ResourceManager that never touches the
// GPU. Used by the terminal frontend and the verification tool.
func NewHeadlessResourceManager() *ResourceManager {
	rm := NewResourceManager(nil)
	rm.headless = true
	return rm
}

// LoadSourceImage decodes an image file from disk and caches it.
//
// Returns:
//   - The decoded image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadSourceImage(path string) (image.Image, error) {
	if img, exists := rm.sourceCache[path]; exists {
		return img, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rm.sourceCache[path] = img
	return img, nil
}

// LoadSprite loads the image at path and builds its collision mask.
// If the file cannot be loaded, fallback() generates a replacement image
// which is cached under the same path.
//
// The mask is built once per path; every entity sharing the sprite shares
// the same immutable mask.
func (rm *ResourceManager) LoadSprite(path string, fallback func() image.Image) (components.SpriteComponent, error) {
	img, err := rm.LoadSourceImage(path)
	if err != nil {
		if fallback == nil {
			return components.SpriteComponent{}, err
		}
		log.Printf("[ResourceManager] Warning: %v (using generated sprite)", err)
		img = fallback()
		rm.sourceCache[path] = img
	}

	mask, ok := rm.maskCache[path]
	if !ok {
		mask = maskOf(img)
		rm.maskCache[path] = mask
		log.Printf("[ResourceManager] Built mask for %s: %dx%d, %d opaque pixels",
			path, mask.Width(), mask.Height(), mask.OpaqueCount())
	}

	sprite := components.SpriteComponent{Mask: mask}
	if !rm.headless {
		eimg, ok := rm.imageCache[path]
		if !ok {
			eimg = ebiten.NewImageFromImage(img)
			rm.imageCache[path] = eimg
		}
		sprite.Image = eimg
	}
	return sprite, nil
}

// maskOf converts an image to RGBA (if needed) and builds its mask from the
// raw pixel buffer.
func maskOf(img image.Image) *collision.Mask {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		// NRGBA/paletted PNG 等格式统一转成紧凑的 RGBA
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return collision.MaskFromRGBA(rgba.Pix, b.Dx(), b.Dy())
}

// GetMask returns a previously built mask, or nil.
func (rm *ResourceManager) GetMask(path string) *collision.Mask {
	return rm.maskCache[path]
}

// LoadSpriteSet loads every sprite the world needs: the ball, the paddle and
// one brick sprite per configured color.
func (rm *ResourceManager) LoadSpriteSet(cfg *config.BreakoutConfig) (entities.SpriteSet, error) {
	set := entities.SpriteSet{Bricks: make(map[string]components.SpriteComponent)}

	var err error
	set.Ball, err = rm.LoadSprite(cfg.Ball.Sprite, func() image.Image {
		return GenerateBallImage(fallbackBallSize)
	})
	if err != nil {
		return set, fmt.Errorf("failed to load ball sprite: %w", err)
	}

	set.Paddle, err = rm.LoadSprite(cfg.Paddle.Sprite, func() image.Image {
		return GeneratePaddleImage(fallbackPaddleWidth, fallbackPaddleHeight)
	})
	if err != nil {
		return set, fmt.Errorf("failed to load paddle sprite: %w", err)
	}

	for _, colorName := range cfg.Bricks.Colors {
		if _, done := set.Bricks[colorName]; done {
			continue
		}
		name := colorName
		sprite, err := rm.LoadSprite(cfg.Bricks.BrickSprite(name), func() image.Image {
			return GenerateBrickImage(fallbackBrickWidth, fallbackBrickHeight, name)
		})
		if err != nil {
			return set, fmt.Errorf("failed to load %s brick sprite: %w", name, err)
		}
		set.Bricks[name] = sprite
	}

	return set, set.Validate(cfg.Bricks.Colors)
}

// RegisterSound associates a sound ID with an asset path.
func (rm *ResourceManager) RegisterSound(soundID, path string) {
	rm.soundPaths[soundID] = path
}

// RegisterSounds registers the configured swish and crash effects.
func (rm *ResourceManager) RegisterSounds(cfg config.SoundsConfig) {
	rm.RegisterSound(SoundSwish, cfg.Swish)
	rm.RegisterSound(SoundCrash, cfg.Crash)
}

// LoadSoundEffect loads a one-shot sound effect from the specified path.
// Supported formats: WAV (.wav), MP3 (.mp3) and OGG Vorbis (.ogg).
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if there is no audio context, or the file cannot be opened,
//     decoded, or the format is unsupported.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}
	defer file.Close()

	// Read the entire file into memory so the stream can seek freely
	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decoded, err := wav.DecodeWithSampleRate(rm.audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decoded
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(rm.audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(rm.audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// SoundPlayer returns the player for a registered sound ID, loading it on
// first use. When the asset cannot be loaded a generated tone is used.
//
// Returns nil only when there is no audio context.
func (rm *ResourceManager) SoundPlayer(soundID string) *audio.Player {
	if player, exists := rm.audioCache[soundID]; exists {
		return player
	}
	if rm.audioContext == nil {
		return nil
	}

	path, registered := rm.soundPaths[soundID]
	var player *audio.Player
	var err error
	if registered && path != "" {
		player, err = rm.LoadSoundEffect(path)
	} else {
		err = fmt.Errorf("sound %s is not registered", soundID)
	}

	if err != nil {
		tone, ok := ToneFor(soundID)
		if !ok {
			log.Printf("[ResourceManager] Warning: %v", err)
			return nil
		}
		log.Printf("[ResourceManager] Warning: %v (using generated tone)", err)
		pcm := GenerateTone(rm.audioContext.SampleRate(), tone.Freq, tone.Duration, 0.5)
		player = rm.audioContext.NewPlayerFromBytes(pcm)
	}

	rm.audioCache[soundID] = player
	return player
}
