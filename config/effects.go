package config

// CameraConfig contains screen shake strengths (pixels) and lengths (frames)
type CameraConfig struct {
	HitShake        float64
	HitShakeFrames  int
	BossShake       float64
	BossShakeFrames int
	KillShake       float64 // Every kill on levels with the screen_shake effect
	KillShakeFrames int
}

// ExplosionConfig contains the particle burst of a destroyed ship
type ExplosionConfig struct {
	Particles     int
	BossParticles int
	Speed         float64 // max pixels per frame
	Life          int     // frames
	Size          float64
}

var Camera CameraConfig
var Explosion ExplosionConfig

func init() {
	Camera = CameraConfig{
		HitShake:        6,
		HitShakeFrames:  20,
		BossShake:       12,
		BossShakeFrames: 45,
		KillShake:       3,
		KillShakeFrames: 10,
	}

	Explosion = ExplosionConfig{
		Particles:     10,
		BossParticles: 40,
		Speed:         3,
		Life:          30,
		Size:          3,
	}
}
