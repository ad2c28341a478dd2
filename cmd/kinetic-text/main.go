package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/kinetic-text/surface"
)

func main() {
	// Terminal must be restored before the stack trace is printed
	defer func() {
		surface.HandleCrash(recover())
	}()

	root, err := newRootCmd()
	if err == nil {
		err = root.Execute()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
