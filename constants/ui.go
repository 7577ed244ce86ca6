package constants

// Overlay text
const (
	ComboSuffix = "x COMBO!"
	ScorePrefix = "Score: "
	TitleText   = "Fruit Cutting ASMR"
	StartHint   = "[S] Start Slicing   [Q] Quit"
	PauseHint   = "[P] Pause"
	ResumeHint  = "[P] Resume   [S] Restart   [Q] Quit"
	MoveHint    = "Move your mouse to slice the fruits!"
)

// Overlay placement in surface units
const (
	ComboTextY = 100.0
	ScoreTextX = 20.0
	ScoreTextY = 40.0
)

// Background wash
const (
	// WashAlpha is the opacity of the per-frame background overlay
	WashAlpha = 0.3

	// TrailAlpha is the opacity of the newest trail segment
	TrailAlpha = 0.8

	// DripCount is the number of juice drips under a split object
	DripCount = 3
)

// Wash convergence and split decoration
const (
	// WashTolerance is the per-channel distance at which a washed glyph counts as faded out
	WashTolerance = 4

	// DripAlpha is the starting opacity of a drip, reduced by split age
	DripAlpha = 0.5

	// DripSpacing is the horizontal distance between drips in surface units
	DripSpacing = 5.0

	// DripFallRate divides split age in ms to get the drip length per drip index
	DripFallRate = 10.0

	// DripDarken is the Lab darkening applied to the drip colour
	DripDarken = 0.25

	// StemLength is the stem mark distance from the object centre as a fraction of size
	StemLength = 0.8
)

// Palette
const (
	BackgroundHex = "#667eea"
	TrailHex      = "#ffffff"
	OutlineHex    = "#000000"
	TextHex       = "#ffffff"
)

// Glyphs and opacities of drawn shapes
const (
	DiscAlpha     = 0.6
	ParticleGlyph = '•'
	DripGlyph     = '.'
	StemGlyph     = '|'
)
