package polygon_test

import (
	"fmt"

	"github.com/katalvlaran/plotart/canvas"
	"github.com/katalvlaran/plotart/polygon"
)

// ExampleFillLines plans the brush strokes for a small triangle.
func ExampleFillLines() {
	tri := []canvas.Point{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 4, Y: 8}}
	fill, _ := polygon.FillLines(tri, 2)
	for _, seg := range fill {
		fmt.Printf("y=%.0f x=[%.0f,%.0f]\n", seg[0].Y, seg[0].X, seg[1].X)
	}
	// Output:
	// y=0 x=[0,8]
	// y=2 x=[1,7]
	// y=4 x=[2,6]
	// y=6 x=[3,5]
	// y=8 x=[4,4]
}

// ExampleGenerate shows that a seeded polygon is reproducible.
func ExampleGenerate() {
	b, _ := canvas.FromCanvas(420, 297, 5)
	spec := polygon.Spec{
		Center: canvas.Point{X: 100, Y: 100}, Sides: 8,
		CircleDiameter: 40, BoxWidth: 40, BoxHeight: 40, BrushSpacing: 1,
	}
	a, _ := polygon.Generate(spec, b, polygon.WithSeed(5))
	c, _ := polygon.Generate(spec, b, polygon.WithSeed(5))
	fmt.Println(len(a.Vertices), a.Outline.Closed(), a.Centroid == c.Centroid)
	// Output:
	// 8 true true
}
