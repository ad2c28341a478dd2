// Package textframe rasterizes a string into a grid of dot positions.
//
// Text is drawn with golang.org/x/image/font onto an offscreen alpha mask
// covering the stage, then sampled on a uniform grid whose cell size is the
// dot pitch. Every cell whose peak coverage crosses the visibility threshold
// yields one dot at the cell center. The result is deterministic for fixed
// text, font, stage and pitch; no randomness is used here.
package textframe
