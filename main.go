package main

import "fastcat.org/go/catr/cmd"

// Embedders can rename the tool with instance.SetAppName before calling Main.
func main() {
	cmd.Main()
}
