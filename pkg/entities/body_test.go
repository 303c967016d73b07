package entities

import (
	"image"
	"testing"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
)

func newTestBody(em *ecs.EntityManager, x, y, scaleX, scaleY float64, w, h int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: scaleX, ScaleY: scaleY})
	sp := solidSprite(w, h)
	ecs.AddComponent(em, id, &sp)
	return id
}

func TestBodyOf_MissingComponents(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{})

	if _, ok := BodyOf(em, id); ok {
		t.Error("Expected BodyOf to fail without scale and sprite")
	}
	if _, ok := BodyOf(em, 999); ok {
		t.Error("Expected BodyOf to fail for unknown entity")
	}
}

func TestBodySizeAndBoundary(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		scaleX       float64
		scaleY       float64
		w, h         int
		wantW, wantH int
		wantRect     image.Rectangle
	}{
		{"unscaled", 10, 20, 1, 1, 8, 4, 8, 4, image.Rect(10, 20, 18, 24)},
		{"scaled down truncates", 10.9, 20.2, 0.2, 0.2, 101, 52, 20, 10, image.Rect(10, 20, 30, 30)},
		{"independent axes", 0, 0, 2, 0.5, 5, 5, 10, 2, image.Rect(0, 0, 10, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := newTestBody(em, tt.x, tt.y, tt.scaleX, tt.scaleY, tt.w, tt.h)
			body, ok := BodyOf(em, id)
			if !ok {
				t.Fatal("BodyOf failed")
			}
			if body.Width() != tt.wantW || body.Height() != tt.wantH {
				t.Errorf("Size = %dx%d, want %dx%d", body.Width(), body.Height(), tt.wantW, tt.wantH)
			}
			if got := body.Boundary(); got != tt.wantRect {
				t.Errorf("Boundary = %v, want %v", got, tt.wantRect)
			}
		})
	}
}

func TestBodyTransformFollowsPosition(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestBody(em, 4, 6, 2, 2, 3, 3)
	body, _ := BodyOf(em, id)

	x, y := body.Transform().Apply(1, 1)
	if x != 6 || y != 8 {
		t.Errorf("Apply(1,1) = (%v, %v), want (6, 8)", x, y)
	}

	// 组件是指针，移动后变换随之更新
	body.Position.X = 10
	x, _ = body.Transform().Apply(1, 1)
	if x != 12 {
		t.Errorf("After move Apply X = %v, want 12", x)
	}
}

func TestBodyOverlapsAndCollide(t *testing.T) {
	em := ecs.NewEntityManager()
	a, _ := BodyOf(em, newTestBody(em, 0, 0, 1, 1, 4, 4))
	b, _ := BodyOf(em, newTestBody(em, 3, 3, 1, 1, 4, 4))
	c, _ := BodyOf(em, newTestBody(em, 4, 0, 1, 1, 4, 4))

	if !a.Overlaps(b) {
		t.Error("Expected a and b to overlap")
	}
	// 边缘相接不算相交
	if a.Overlaps(c) {
		t.Error("Expected touching rectangles not to overlap")
	}

	p, hit := a.CollideWith(b)
	if !hit {
		t.Fatal("Expected pixel collision between a and b")
	}
	if p.X != 3 || p.Y != 3 {
		t.Errorf("Collision point = (%v, %v), want (3, 3)", p.X, p.Y)
	}
	if _, hit := a.CollideWith(c); hit {
		t.Error("Expected no pixel collision between a and c")
	}
}
