package config

import "gonum.org/v1/plot/vg"

const (
	WindowWidth  = 1280
	WindowHeight = 900

	// Parameter grid
	DelayPoints = 100
	DelayMin    = -2.0
	DelayMax    = 2.0
	ScalePoints = 50
	ScaleMin    = -1.0
	ScaleMax    = 1.0

	// Smallest magnitude fed to a logarithm.
	MagnitudeFloor = 1e-10

	// Level counts
	ContourLevels       = 20
	FilledContourLevels = 20
	Contour3DLevels     = 50
	BaseContourLevels   = 10

	// Camera, degrees
	CameraAzimuth   = -60.0
	CameraElevation = 30.0

	// Surface face opacity
	SurfaceAlpha = 0.8

	// Palette steps used for heatmaps and colorbars
	PaletteSteps = 256
)

// Figure sizes
const (
	GalleryWidth     = 20 * vg.Inch
	GalleryHeight    = 15 * vg.Inch
	ComparisonWidth  = 15 * vg.Inch
	ComparisonHeight = 12 * vg.Inch
	Interactive3DW   = 12 * vg.Inch
	Interactive3DH   = 8 * vg.Inch
	SinglePanelW     = 8 * vg.Inch
	SinglePanelH     = 6 * vg.Inch
)

// Axis and legend labels
const (
	DelayLabel     = "τ (s)"
	ScaleLabel     = "α"
	AmplitudeLabel = "amplitude"
	LogLabel       = "log10(amplitude)"
	DBLabel        = "amplitude (dB)"
)

// Default palettes
const (
	LinearPalette = "viridis"
	LogPalette    = "plasma"
	DBPalette     = "inferno"
)

// ComparisonPalettes are the panels of the colormap comparison, in order.
var ComparisonPalettes = []string{"plasma", "jet", "hot", "coolwarm"}
