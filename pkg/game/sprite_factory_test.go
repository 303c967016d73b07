package game

import (
	"testing"

	"github.com/decker502/breakout/pkg/collision"
)

func TestGenerateBallImage(t *testing.T) {
	img := GenerateBallImage(20)
	m := collision.MaskFromImage(img)

	if m.Opaque(0, 0) || m.Opaque(19, 19) {
		t.Error("Ball corners should be transparent")
	}
	if !m.Opaque(10, 10) {
		t.Error("Ball center should be opaque")
	}
}

func TestGeneratePaddleImage(t *testing.T) {
	m := collision.MaskFromImage(GeneratePaddleImage(50, 10))

	if m.Opaque(0, 0) {
		t.Error("Rounded corner should be transparent")
	}
	if !m.Opaque(25, 0) || !m.Opaque(25, 9) {
		t.Error("Top and bottom edges at the middle should be opaque")
	}
}

func TestBrickFillColor(t *testing.T) {
	if got := BrickFillColor("red"); got != brickPalette["red"] {
		t.Errorf("red = %v", got)
	}
	if got := BrickFillColor("purple"); got != brickPalette["grey"] {
		t.Errorf("unknown color should fall back to grey, got %v", got)
	}

	img := GenerateBrickImage(16, 16, "blue")
	if img.RGBAAt(8, 8) != brickPalette["blue"] {
		t.Errorf("Brick center = %v, want blue", img.RGBAAt(8, 8))
	}
}

func TestGenerateTone(t *testing.T) {
	pcm := GenerateTone(48000, 440, 0.5, 0.5)

	// 16 位双声道：每帧 4 字节
	if len(pcm) != 48000/2*4 {
		t.Fatalf("PCM length = %d, want %d", len(pcm), 48000/2*4)
	}
	// 第一个采样 sin(0) = 0
	if pcm[0] != 0 || pcm[1] != 0 {
		t.Errorf("First sample should be silent, got %v", pcm[:2])
	}
	// 左右声道相同
	for i := 0; i < len(pcm); i += 400 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("Channels differ at byte %d", i)
		}
	}
}

func TestToneFor(t *testing.T) {
	swish, ok := ToneFor(SoundSwish)
	if !ok || swish.Freq != 880 {
		t.Errorf("ToneFor(swish) = %+v, %v", swish, ok)
	}
	crash, ok := ToneFor(SoundCrash)
	if !ok || crash.Duration <= swish.Duration {
		t.Errorf("Expected crash tone longer than swish, got %+v", crash)
	}
	if _, ok := ToneFor("unknown"); ok {
		t.Error("Expected no tone for unknown sound")
	}
}
