package config

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Layout defaults
	DefaultCount  = 500
	DefaultSpread = 5.0
	DefaultGroups = 1

	MinCount  = 10
	MinSpread = 1.0
	MaxGroups = 9

	CountStep  = 10
	SpreadStep = 0.5

	// Analyser parameters
	FFTSize            = 256
	SmoothingTimeConst = 0.8
	MinDecibels        = -100.0
	MaxDecibels        = -30.0

	// Capture parameters
	SampleRate      = 44100
	FramesPerBuffer = 1024
	VisualRingSize  = 8192

	// Camera
	CameraFOV      = 75.0
	CameraNear     = 0.1
	CameraFar      = 1000.0
	CameraDistance = 100.0
	CameraDamping  = 0.25

	SphereRadius = 0.5

	// Key auto repeat, in ticks
	RepeatDelay    = 30
	RepeatInterval = 3
)
