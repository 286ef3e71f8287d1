package renderer

import (
	"fmt"
	"math"

	"github.com/glint-render/glint/pkg/core"
)

// Camera maps pixel grid coordinates to world-space rays. The transform is
// world-to-camera; its inverse is cached for ray generation. Half extents
// and pixel size are derived once at construction.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	HalfWidth   float64
	HalfHeight  float64
	PixelSize   float64

	transform core.Matrix
	inverse   core.Matrix
}

// NewCamera creates a camera for a canvas of hsize x vsize pixels with the
// given field-of-view angle in radians and the identity transform
func NewCamera(hsize, vsize int, fieldOfView float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera dimensions must be positive, got %dx%d", hsize, vsize)
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		HalfWidth:   halfWidth,
		HalfHeight:  halfHeight,
		PixelSize:   (halfWidth * 2) / float64(hsize),
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}, nil
}

// Transform returns the world-to-camera matrix
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform stores the world-to-camera matrix and caches its inverse
func (c *Camera) SetTransform(m core.Matrix) {
	c.transform = m
	c.inverse = m.Inverse()
}

// RayForPixel returns the world-space ray through the center of a pixel,
// with a normalized direction
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// Offsets from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// The canvas sits at z = -1; +x on the canvas is -x in the world
	// because the camera looks toward -z
	worldX := c.HalfWidth - xOffset
	worldY := c.HalfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
