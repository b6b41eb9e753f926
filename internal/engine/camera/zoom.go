package camera

import gomath "math"

// zoomSnap is the accumulator magnitude below which zoom stops, and the
// smallest decay step per frame.
const zoomSnap = 0.1

// Zoom eases scroll input out over several frames.
type Zoom struct {
	pending float32
}

// Add accumulates scroll wheel input.
func (z *Zoom) Add(scroll float32) {
	z.pending += scroll
}

// Reset drops any pending scroll.
func (z *Zoom) Reset() { z.pending = 0 }

// Step moves cam along its front vector by speed*pending*dt, then decays
// pending by a twentieth of its magnitude (at least zoomSnap) toward zero.
func (z *Zoom) Step(cam *Camera, speed, dt float32) {
	if z.pending == 0 {
		return
	}

	cam.Move(cam.Front(), speed*z.pending*dt)

	mag := float32(gomath.Abs(float64(z.pending)))
	step := mag / 20
	if step < zoomSnap {
		step = zoomSnap
	}
	mag -= step
	if mag < zoomSnap {
		z.pending = 0
		return
	}
	if z.pending < 0 {
		z.pending = -mag
	} else {
		z.pending = mag
	}
}
