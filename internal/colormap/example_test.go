package colormap_test

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/waf-visualization/internal/colormap"
)

func ExampleNames() {
	fmt.Println(colormap.Names())
	// Output: [coolwarm hot inferno jet magma plasma viridis]
}

func ExampleNew() {
	_, err := colormap.New("rainbow")
	fmt.Println(errors.Is(err, colormap.ErrUnknown))
	// Output: true
}
