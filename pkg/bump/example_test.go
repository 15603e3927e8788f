package bump_test

import (
	"fmt"

	"github.com/walteh/vbump/pkg/bump"
)

func ExampleRewrite() {
	pattern := bump.MustCompilePattern(bump.DefaultPattern)

	result := bump.Rewrite(`import Hero from "./Hero_v3"; // Hero_v1 is gone`, pattern, bump.ModeIncrement)

	fmt.Println(result.Content)
	for _, c := range result.Changes {
		fmt.Printf("%s -> %s\n", c.Old, c.New)
	}

	// Output:
	// import Hero from "./Hero_v4"; // Hero_v2 is gone
	// _v3 -> _v4
	// _v1 -> _v2
}

func ExampleModeFrom() {
	mode, conflict := bump.ModeFrom(true, true)
	fmt.Println(mode, conflict)

	// Output:
	// reset true
}
