package render

// UpperHalfBlock renders the upper pixel as foreground, the lower as background
const UpperHalfBlock = '▀'

// PixelsPerRow is the number of canvas pixel rows packed into one terminal row
const PixelsPerRow = 2

// CellSetter receives one terminal cell worth of pixels
type CellSetter func(x, y int, upper, lower RGB)

// HalfBlocks walks the canvas two rows at a time, emitting one cell per column
// An odd trailing pixel row pairs with background
func HalfBlocks(c *Canvas, set CellSetter) {
	rows := (c.height + PixelsPerRow - 1) / PixelsPerRow
	for row := 0; row < rows; row++ {
		top := row * PixelsPerRow
		for x := 0; x < c.width; x++ {
			set(x, row, c.At(x, top), c.At(x, top+1))
		}
	}
}

// CellToPixel maps a terminal cell to the canvas pixel at its visual center
func CellToPixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y*PixelsPerRow) + float64(PixelsPerRow)/2
}

// CellsToPixels converts terminal dimensions to canvas dimensions
func CellsToPixels(cols, rows int) (int, int) {
	return cols, rows * PixelsPerRow
}
