package transform_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-interval/dsp/transform"
)

func ExampleForward() {
	spec, err := transform.Forward([]float32{1, 1, 1, 1})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d %.1f\n", len(spec), real(spec[0]))
	// Output:
	// 4 4.0
}

func ExampleValidate() {
	err := transform.Validate(6)
	fmt.Println(errors.Is(err, transform.ErrInvalidLength))
	// Output:
	// true
}
