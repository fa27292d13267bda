package systems

import (
	"math"

	"github.com/automoto/starlane/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances any active screen shake. The playfield never
// scrolls, so shake is the camera's only motion.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Offset.X, camera.Offset.Y = 0, 0

	updateScreenShake(cameraEntry, camera)
}

// updateScreenShake applies screen shake offset to camera and advances it
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Oscillate on both axes at slightly different rates
	camera.Offset.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Offset.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect. A weaker shake never
// cuts a stronger one short.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		remaining := shake.Intensity * float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
		if intensity > remaining {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	donburi.Add(cameraEntry, components.ScreenShake, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// CameraOffset returns the offset the world layer is drawn at this frame.
func CameraOffset(ecs *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Offset.X, camera.Offset.Y
}
