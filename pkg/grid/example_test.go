package grid_test

import (
	"fmt"

	"github.com/newjenk/gridsystem/pkg/grid"
)

func ExampleClasses() {
	// A column that narrows as the viewport grows
	attrs := grid.Attributes{"allSize": "12", "smSize": "6", "mdSize": "4"}
	fmt.Println(grid.Classes(grid.Column, attrs, grid.Canonical))
	// Output:
	// col-12 col-sm-6 col-md-4
}

func ExampleClasses_reveal() {
	// Hidden at sm only: md must restate the carried size
	attrs := grid.Attributes{"allSize": "6", "smNone": true, "mdNone": false}
	fmt.Println("canonical:", grid.Classes(grid.Column, attrs, grid.Canonical))
	fmt.Println("legacy:   ", grid.Classes(grid.Column, attrs, grid.Legacy))
	// Output:
	// canonical: col-6 d-sm-none d-md-block col-md-6
	// legacy:    col-6 d-sm-none d-md-block
}

func ExampleEmit() {
	tr := grid.Emit(grid.Column, grid.Attributes{"orderXs": "2", "orderSm": "default"}, grid.Canonical)
	for _, tok := range tr.Tokens {
		fmt.Printf("%-10s %s %s\n", tok.Class, tok.Breakpoint, tok.Reason)
	}
	// Output:
	// col-12     xs base
	// order-2    xs base
	// order-sm-0 sm reset
}

func ExampleResolve() {
	res := grid.Resolve(grid.Spacer, grid.Attributes{"paddingBottomXs": 3, "paddingBottomLg": 5})
	for _, bp := range grid.Breakpoints() {
		e, _ := res.Value(bp, "padding")
		fmt.Println(bp, e.Token, e.Source())
	}
	// Output:
	// xs 3 set
	// sm 3 inherited from xs
	// md 3 inherited from xs
	// lg 5 set
	// xl 5 inherited from lg
}

func ExampleKindByName() {
	k, _ := grid.KindByName("grid-system/responsive-spacer")
	fmt.Println(k.Name, k.BlockName(), k.WrapperClass())
	// Output:
	// spacer grid-system/responsive-spacer wp-block-grid-system-responsive-spacer
}
