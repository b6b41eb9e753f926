package stages

import (
	"github.com/Faultbox/roam3d/internal/engine/camera"
	"github.com/Faultbox/roam3d/internal/engine/scene"
	"github.com/Faultbox/roam3d/pkg/math"
)

// navigator applies camera controls and the collision veto. Both stages
// share it.
type navigator struct {
	speeds Speeds
	home   math.Vec3
	zoom   camera.Zoom
}

// update moves the active camera. It returns true when the frame's input
// handling should stop (camera switched or view reset).
func (n *navigator) update(sc *scene.Scene, ctl Controls, dt float32, res *Result) bool {
	cam := sc.Camera()
	if cam == nil {
		return false
	}

	if ctl.SwitchCamera {
		sc.NextCamera()
		n.zoom.Reset()
		return true
	}
	if ctl.ResetView {
		cam.ResetView(n.home)
		n.zoom.Reset()
		return true
	}

	before := cam.Transform.Position

	step := n.speeds.CameraMove * dt
	if ctl.CameraUp {
		cam.Move(cam.Up(), step)
	}
	if ctl.CameraDown {
		cam.Move(cam.Up(), -step)
	}
	if ctl.CameraRight {
		cam.Move(cam.Right(), step)
	}
	if ctl.CameraLeft {
		cam.Move(cam.Right(), -step)
	}

	if ctl.Dragging {
		if ctl.MouseDX != 0 {
			cam.Rotate(math.WorldUp, -n.speeds.CameraRotate*dt*ctl.MouseDX)
		}
		if ctl.MouseDY != 0 {
			cam.Rotate(cam.Right(), -n.speeds.CameraRotate*dt*ctl.MouseDY)
		}
	}

	n.zoom.Add(ctl.Scroll)
	n.zoom.Step(cam, n.speeds.Zoom, dt)

	if i := sc.Blocking(cam.Position()); i >= 0 {
		cam.Transform.Position = before
		res.CameraBlocked = true
		res.BlockedBy = i
	}
	return false
}

// newCameras builds the free camera and the orbit camera every stage starts with.
func newCameras(spec CameraSpec, aspect float32, orbitProjection camera.Projection) []*camera.Camera {
	free := camera.NewPerspective(spec.FovY, aspect, spec.Near, spec.Far)
	free.Transform.Position = spec.Start

	var orbit *camera.Camera
	if orbitProjection == camera.Orthographic {
		orbit = camera.NewOrthographic(spec.Start.Length()/2, aspect, spec.Near, spec.Far)
	} else {
		orbit = camera.NewPerspective(spec.FovY, aspect, spec.Near, spec.Far)
	}
	orbit.Mode = camera.Orbit
	orbit.Transform.Position = spec.Start

	return []*camera.Camera{free, orbit}
}
