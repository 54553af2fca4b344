// Matugo - A Material Design 3 colour scheme generator
//
// Matugo turns a wallpaper image or seed colour into a full Material
// Design 3 colour scheme for theming your applications.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/matugo/internal/cli"
)

func main() {
	cli.Execute()
}
