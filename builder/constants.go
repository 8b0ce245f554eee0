// SPDX-License-Identifier: MIT

package builder

// Constructor names used as error prefixes.
const (
	MethodBuildImage    = "BuildImage"
	MethodConstant      = "Constant"
	MethodRamp          = "Ramp"
	MethodImpulse       = "Impulse"
	MethodCheckerboard  = "Checkerboard"
	MethodGaussianBlobs = "GaussianBlobs"
	MethodNoise         = "Noise"
)

// MinSquare is the smallest checkerboard square side.
const MinSquare = 1

// MinBlobs is the smallest blob count.
const MinBlobs = 1
