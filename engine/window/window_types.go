package window

// DefaultTitle is the title used when none is configured.
const DefaultTitle = "blorf"

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// The web build renders into a single canvas element appended to the document body.
const (
	// CanvasID is the id attribute of the canvas element.
	CanvasID = "blorf"
	// CanvasWidth is the canvas width attribute in pixels.
	CanvasWidth = 250
	// CanvasHeight is the canvas height attribute in pixels.
	CanvasHeight = 250
	// CanvasStyle is the inline style of the canvas element.
	CanvasStyle = "background-color: green;"
)
