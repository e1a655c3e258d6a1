package assignio_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ldgssm/ldgssm/assignio"
)

// ExampleReadAssignmentWords decodes a raw little-endian uint32 payload
// into its flat word slice, the format WriteAssignment produces before
// zstd compression.
func ExampleReadAssignmentWords() {
	var buf bytes.Buffer
	for _, w := range []uint32{0, 1, 2, assignio.VoidSentinel} {
		binary.Write(&buf, binary.LittleEndian, w)
	}

	words, err := assignio.ReadAssignmentWords(buf.Bytes())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(words)
	// Output:
	// [0 1 2 4294967295]
}
