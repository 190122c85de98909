package ui

// Layout constants
const (
	minPanelWidth  = 10
	minPanelHeight = 5
	// Border (2) + padding (2 left + 2 right) = 6 horizontal overhead per panel
	horizontalOverhead = 6
	// Border (2) + title line (1) = 3 vertical overhead per panel
	verticalOverhead = 3
	// Controls: buttons + status + help = 3 lines, plus vertical overhead (3)
	controlsFixedHeight = 6
	// Properties panel fixed width
	propertiesFixedWidth = 32
	// Border (1) + padding (1) before panel content
	contentInsetX = 2
	// Top border before panel content
	contentInsetY = 1
)

// PanelDimensions holds the calculated dimensions for all panels
// Layout: Preview + Properties (top row, horizontal split) + Controls (bottom, fixed height)
type PanelDimensions struct {
	// Total panel dimensions (for lipgloss Width/Height)
	PreviewWidth     int
	PreviewHeight    int
	PropertiesWidth  int
	PropertiesHeight int
	ControlsWidth    int
	ControlsHeight   int
	// Content dimensions (what gets passed to panel Render)
	PreviewContentWidth     int
	PreviewContentHeight    int
	PropertiesContentWidth  int
	PropertiesContentHeight int
	ControlsContentWidth    int
	ControlsContentHeight   int
	// Screen position of the first controls content cell
	ControlsContentX int
	ControlsContentY int
}

// CalculatePanelDimensions calculates panel dimensions based on terminal size
func CalculatePanelDimensions(termWidth, termHeight int) PanelDimensions {
	controlsHeight := controlsFixedHeight
	topRowHeight := termHeight - controlsHeight

	propertiesWidth := propertiesFixedWidth
	previewWidth := termWidth - propertiesWidth

	return PanelDimensions{
		PreviewWidth:            previewWidth,
		PreviewHeight:           topRowHeight,
		PropertiesWidth:         propertiesWidth,
		PropertiesHeight:        topRowHeight,
		ControlsWidth:           termWidth,
		ControlsHeight:          controlsHeight,
		PreviewContentWidth:     max(0, previewWidth-horizontalOverhead),
		PreviewContentHeight:    max(0, topRowHeight-verticalOverhead),
		PropertiesContentWidth:  max(0, propertiesWidth-horizontalOverhead),
		PropertiesContentHeight: max(0, topRowHeight-verticalOverhead),
		ControlsContentWidth:    max(0, termWidth-horizontalOverhead),
		ControlsContentHeight:   max(0, controlsHeight-verticalOverhead),
		ControlsContentX:        contentInsetX,
		ControlsContentY:        topRowHeight + contentInsetY,
	}
}
