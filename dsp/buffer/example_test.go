package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-fundamental/dsp/buffer"
)

func ExampleBuffer() {
	b := buffer.New(8)
	b.Append(1, 2, 3, 4, 5)

	fmt.Println(b.Peek(3))
	b.Discard(3)
	fmt.Println(b.Peek(b.Len()))

	// Output:
	// [1 2 3]
	// [4 5]
}
