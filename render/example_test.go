package render_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/layout"
	"github.com/katalvlaran/icurves/render"
)

func ExampleWriteSVG() {
	d, err := layout.NewCreator().Create(context.Background(), description.MustParse("a b ab"))
	if err != nil {
		fmt.Println(err)
		return
	}
	var sb strings.Builder
	if err := render.WriteSVG(&sb, d, render.DefaultOptions()); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.Count(sb.String(), "data-curve="))
	// Output: 2
}
