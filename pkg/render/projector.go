package render

import "rushline/pkg/track"

// depthEpsilon is the minimum camera-relative depth. A point exactly at
// the camera plane would otherwise divide by zero.
const depthEpsilon = 1e-6

// Project writes the screen projection of a world point into its screen
// fields. It is the single source of 3D-to-2D math: every point drawn,
// road boundaries and sprite anchors alike, goes through here.
//
// cameraDepth is the projection-plane distance (1/tan(fov/2)) and
// controls the field-of-view distortion. roadWidth is the road
// half-width in world units; ScreenW comes out as the projected road
// half-width in pixels.
func Project(p *track.Point, camX, camY, camZ, cameraDepth, width, height, roadWidth float64) {
	dz := p.Z - camZ
	if dz < depthEpsilon {
		dz = depthEpsilon
	}
	scale := cameraDepth / dz

	p.ScreenX = width/2 + scale*(p.X-camX)*width/2
	p.ScreenY = height/2 - scale*(p.Y-camY)*height/2
	p.ScreenW = scale * roadWidth * width / 2
}
