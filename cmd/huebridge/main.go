// HueBridge - Accessible colour palettes from a single base colour
//
// HueBridge generates palette templates, checks them for contrast and
// distinguishability under colour-vision deficiencies, and repairs them.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/huebridge/internal/cli"

func main() {
	cli.Execute()
}
