package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-6

func assertVec3Equal(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), tol)
	assert.InDelta(t, want.Y(), got.Y(), tol)
	assert.InDelta(t, want.Z(), got.Z(), tol)
}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, Front, c.CurrentView())
	assertVec3Equal(t, mgl32.Vec3{0, 0, 10}, c.Position())
	assertVec3Equal(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec3Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())
}

func TestSelectAimsAtSceneCenter(t *testing.T) {
	for _, v := range []View{Front, Top, Side} {
		c := New()
		c.Select(v)
		assert.Equal(t, v, c.CurrentView())
		assertVec3Equal(t, presets[v], c.Position())
		assertVec3Equal(t, sceneCenter.Sub(presets[v]).Normalize(), c.Front())
	}
}

func TestTopView(t *testing.T) {
	c := New()
	c.Select(Top)
	assertVec3Equal(t, mgl32.Vec3{0, 10, 0}, c.Position())
	assertVec3Equal(t, mgl32.Vec3{0, -1, 0}, c.Front())
	assertVec3Equal(t, mgl32.Vec3{0, 0, -1}, c.Up())
}

func TestUpIsStickyAcrossNonTopSelections(t *testing.T) {
	c := New()
	c.Select(Side)
	assertVec3Equal(t, mgl32.Vec3{0, 1, 0}, c.Up()) // untouched

	c.Select(Top)
	assertVec3Equal(t, mgl32.Vec3{0, 0, -1}, c.Up())

	// Leaving the top view does not restore the default up vector.
	c.Select(Front)
	assertVec3Equal(t, mgl32.Vec3{0, 0, -1}, c.Up())
	c.Select(Side)
	assertVec3Equal(t, mgl32.Vec3{0, 0, -1}, c.Up())
}

func TestSelectIsIdempotent(t *testing.T) {
	c := New()
	c.Select(Top)
	before := *c
	c.Select(Top)
	assert.Equal(t, before, *c)
}

func TestViewMatrix(t *testing.T) {
	c := New()
	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 9}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, want, c.ViewMatrix())

	c.Select(Side)
	want = mgl32.LookAtV(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{9, 0, 0}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, want, c.ViewMatrix())
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "front", Front.String())
	assert.Equal(t, "top", Top.String())
	assert.Equal(t, "side", Side.String())
	assert.Equal(t, "unknown", View(7).String())
}
