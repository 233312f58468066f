package components

import "github.com/yohamta/donburi"

// CameraData is the singleton camera: a world-space center position with
// smoothed look-ahead. Alpha is the render interpolation fraction for the
// current frame, written by the scene after advancing the clock.
type CameraData struct {
	Position   Vector
	LookAheadX float64
	Alpha      float64
}

var Camera = donburi.NewComponentType[CameraData]()
