package input

import "github.com/spaghettifunk/lumen/engine/math"

// Sensors holds the latest device motion and orientation samples.
type Sensors struct {
	Attached bool
	// Acceleration including gravity, in m/s².
	Acceleration math.Vec3
	// Orientation angles in radians.
	Yaw   float32
	Pitch float32
	Roll  float32
}
