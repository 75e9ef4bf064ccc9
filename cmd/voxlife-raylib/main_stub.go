//go:build !raylib

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The native viewer requires the raylib build tag and cgo.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags raylib ./cmd/voxlife-raylib`.")
	os.Exit(2)
}
