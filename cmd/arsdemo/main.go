// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command arsdemo draws and prints samples from a Gamma distribution using
// adaptive rejection sampling. Ground: gonum's own main/main.go, a short
// demo program living alongside the library it exercises.
package main

import (
	"fmt"

	"github.com/arscore/ars"
	"github.com/arscore/ars/dist"
	"github.com/arscore/ars/uniform"
)

func main() {
	g, err := dist.NewGamma(2, 1)
	if err != nil {
		fmt.Println("invalid parameter:", err)
		return
	}

	hull, err := ars.NewHull(g)
	if err != nil {
		fmt.Println("initialization failed:", err)
		return
	}

	src := uniform.New(1)
	for i := 0; i < 10; i++ {
		x, err := hull.DrawSample(src)
		if err != nil {
			fmt.Println("sampling failed:", err)
			return
		}
		fmt.Printf("sample %d: %.6f\n", i, x)
	}

	fmt.Println()
	fmt.Print(hull.String())
}
