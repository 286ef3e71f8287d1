package scene

import (
	"github.com/glint-render/glint/pkg/renderer"
	"github.com/glint-render/glint/pkg/world"
)

// Scene pairs a world with the camera that views it
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}
