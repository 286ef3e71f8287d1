package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/glint-render/glint/pkg/core"
	"github.com/glint-render/glint/pkg/world"
)

// Config contains rendering configuration
type Config struct {
	MaxDepth int         // Maximum reflection/refraction recursion depth
	Workers  int         // Parallel workers; 0 means one per CPU
	Logger   core.Logger // Optional progress logger
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 5,
		Workers:  runtime.NumCPU(),
	}
}

// Stats contains statistics about a completed render
type Stats struct {
	Pixels      int           // Total pixels rendered
	PrimaryRays int           // Primary rays cast (one per pixel)
	Workers     int           // Workers used
	Duration    time.Duration // Wall-clock render time
}

// Renderer drives the per-pixel render loop over an immutable world and
// camera. Pixels are independent, so rows are distributed across a worker
// pool; each worker writes a disjoint set of pixels and no locking is
// needed.
type Renderer struct {
	world  *world.World
	camera *Camera
	config Config
}

// NewRenderer creates a renderer with the default configuration
func NewRenderer(w *world.World, c *Camera) *Renderer {
	return &Renderer{
		world:  w,
		camera: c,
		config: DefaultConfig(),
	}
}

// SetConfig updates the rendering configuration; zero values fall back to
// the defaults
func (r *Renderer) SetConfig(config Config) {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultConfig().MaxDepth
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	r.config = config
}

// Render traces one ray per pixel and returns the finished canvas. The
// computation is deterministic: worker count affects only wall-clock time.
func (r *Renderer) Render() (*Canvas, Stats) {
	start := time.Now()
	canvas := NewCanvas(r.camera.HSize, r.camera.VSize)

	rows := make(chan int, r.camera.VSize)
	for y := 0; y < r.camera.VSize; y++ {
		rows <- y
	}
	close(rows)

	var rowsDone atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < r.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(canvas, y)
				r.logProgress(int(rowsDone.Add(1)))
			}
		}()
	}
	wg.Wait()

	pixels := r.camera.HSize * r.camera.VSize
	return canvas, Stats{
		Pixels:      pixels,
		PrimaryRays: pixels,
		Workers:     r.config.Workers,
		Duration:    time.Since(start),
	}
}

// renderRow traces every pixel in one canvas row
func (r *Renderer) renderRow(canvas *Canvas, y int) {
	for x := 0; x < r.camera.HSize; x++ {
		ray := r.camera.RayForPixel(x, y)
		color := r.world.ColorAt(ray, r.config.MaxDepth)
		canvas.WritePixel(x, y, color)
	}
}

// logProgress reports completion at roughly 10% intervals
func (r *Renderer) logProgress(done int) {
	if r.config.Logger == nil {
		return
	}
	total := r.camera.VSize
	step := total / 10
	if step == 0 {
		step = 1
	}
	if done%step == 0 || done == total {
		r.config.Logger.Printf("rendered %d/%d rows (%.0f%%)", done, total, float64(done)/float64(total)*100)
	}
}
