package layout_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/layout"
)

func ExampleCreator_Create() {
	d := description.MustParse("a b c ab ac bc abc")
	out, err := layout.NewCreator().Create(context.Background(), d)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(out.Curves), len(out.Regions), len(out.Shaded))
	for _, s := range out.Steps {
		fmt.Println(s.Added, s.Method)
	}
	// Output:
	// 3 8 0
	// c base
	// b single-piercing
	// a double-piercing
}
