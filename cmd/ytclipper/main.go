package main

import (
	"fmt"
	"os"

	"github.com/ytclipper/ytclipper/internal/clipboard"
)

func main() {
	if err := newRootCmd(clipboard.System{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
