package interpolate_test

import (
	"context"
	"fmt"

	interpolate "github.com/flywave/go-interpolate"
)

var pos = []interpolate.Sample{
	{Lon: 0, Lat: 0, Value: 1},
	{Lon: 1, Lat: 0, Value: 3},
	{Lon: 0, Lat: 1, Value: 5},
	{Lon: 1, Lat: 1, Value: 7},
}

func ExampleFitVariogram() {
	v, err := interpolate.FitVariogram(pos, interpolate.Spherical, nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("model=%s nugget=%.4f sill=%.4f range=%.4f\n", v.Model, v.Nugget, v.Sill, v.Range)
	// Output:
	// model=spherical nugget=0.3000 sill=6.0000 range=0.4243
}

func ExampleKriging() {
	kri, err := interpolate.NewKriging(pos, interpolate.KrigingOptions{Model: interpolate.Exponential})
	if err != nil {
		panic(err)
	}
	value, variance, err := kri.Predict(1, 0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f %.4f\n", value, variance)
	// Output:
	// 3.0000 0.0000
}

func ExampleIDW() {
	idw, err := interpolate.NewIDW([]interpolate.Sample{
		{Lon: 0, Lat: 0, Value: 10},
		{Lon: 1, Lat: 0, Value: 20},
	}, interpolate.IDWOptions{})
	if err != nil {
		panic(err)
	}
	v, _ := idw.Interpolate(0.5, 0)
	fmt.Println(v)
	// Output:
	// 15
}

func ExampleGrid_Evaluate() {
	idw, err := interpolate.NewIDW(pos, interpolate.IDWOptions{})
	if err != nil {
		panic(err)
	}
	grid, err := interpolate.NewGrid(interpolate.SampleBounds(pos, 0), 2, 2)
	if err != nil {
		panic(err)
	}
	if err := grid.Evaluate(context.Background(), idw, interpolate.GridOptions{}); err != nil {
		panic(err)
	}
	for row := 0; row < grid.Height; row++ {
		fmt.Printf("%.2f %.2f\n", grid.Value(row, 0), grid.Value(row, 1))
	}
	// Output:
	// 4.59 5.76
	// 2.24 3.41
}
