package ray_test

import (
	"fmt"

	"github.com/katalvlaran/plotart/canvas"
	"github.com/katalvlaran/plotart/ray"
)

// ExampleFan bounces a single horizontal beam twice between the side walls.
func ExampleFan() {
	b, _ := canvas.NewBounds(5, 5, 95, 95)
	rays, err := ray.Fan(ray.Spec{
		Origin: canvas.Point{X: 50, Y: 30}, Angle: 0, Count: 2, Spread: 0, MaxBounces: 2,
	}, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range rays[0] {
		fmt.Printf("(%.0f,%.0f) ", p.X, p.Y)
	}
	fmt.Println()
	// Output:
	// (50,30) (95,30) (5,30)
}
