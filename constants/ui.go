package constants

// Default Palette (rgb() strings accepted by render.ParseColor)
const (
	DefaultPrimaryColor    = "rgb(230, 230, 240)"
	DefaultBackgroundColor = "rgb(18, 18, 28)"
	DefaultAccentColor     = "rgb(255, 170, 60)"
)

// DefaultText is rendered when no text is configured
const DefaultText = "kinetic"

// Viewport Size Modes
const (
	// PixelsPerColumn converts terminal columns to the nominal pixel widths below
	PixelsPerColumn = 10

	// Upper bound (inclusive) in nominal pixels for each size mode
	SmallModeMaxWidth   = 768
	RegularModeMaxWidth = 1374
	MediumModeMaxWidth  = 1980
	LargeModeMaxWidth   = 3840
)
