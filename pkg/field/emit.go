package field

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// EmitOptions controls the generated C source.
type EmitOptions struct {
	// Defines emits RANDOM_FIELD_WIDTH/RANDOM_FIELD_HEIGHT macros.
	Defines bool
}

// WriteC writes f as a C array literal of struct Rgb.
func WriteC(w io.Writer, f *Field, opts EmitOptions) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "#include \"rgb.h\"\n\n")
	if opts.Defines {
		fmt.Fprintf(bw, "#define RANDOM_FIELD_WIDTH %d\n", f.Width)
		fmt.Fprintf(bw, "#define RANDOM_FIELD_HEIGHT %d\n\n", f.Height)
	}
	fmt.Fprintf(bw, "const struct Rgb RANDOM_FIELD[%d][%d] = {\n", f.Width, f.Height)
	for _, col := range f.Cells {
		fmt.Fprint(bw, "\t{\n")
		for _, c := range col {
			fmt.Fprintf(bw, "\t\t%s,\n", c)
		}
		fmt.Fprint(bw, "\t},\n")
	}
	fmt.Fprint(bw, "};\n")
	return errors.Wrap(bw.Flush(), "write C source")
}
