// Package kinetic animates a field of text dots in two phases.
//
// A click starts the pluck phase: a ripple grows from the click point and every
// dot inside its disc plays a short, ripple-gated bump that fades toward the
// background. Once the ripple has swept the whole text field the controller
// switches to the kinetic phase, where dots are pushed away from the pointer
// and spring back toward their rest cells.
//
// Everything here is single-threaded: the host calls Animate once per frame and
// delivers pointer and click events from the same goroutine.
package kinetic
