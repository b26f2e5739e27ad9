package render

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"strconv"
	"strings"

	"github.com/cjeanneret/HexMove/internal/debug"
	"github.com/cjeanneret/HexMove/internal/logic/movement"
)

// Output formats.
const (
	FormatC  = "c"
	FormatGo = "go"
)

// DefaultPackage is the package clause used by FormatGo when none is set.
const DefaultPackage = "servo"

var (
	// ErrUnknownFormat is returned for a format other than FormatC or FormatGo.
	ErrUnknownFormat = errors.New("render: unknown format")
	// ErrInvalidPackage is returned when a package clause is not a Go identifier.
	ErrInvalidPackage = errors.New("render: package name is not a Go identifier")
)

// Options controls how a table is written.
type Options struct {
	Format  string // FormatC (default) or FormatGo
	Package string // package clause for FormatGo
	Columns int    // wrap the literal every Columns values; 0 keeps one line
	Size    int    // declared size; 0 means the table's capacity
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatC, FormatGo}
}

// ValidatePackage rejects names that cannot follow the package keyword.
func ValidatePackage(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidPackage, name)
	}
	return nil
}

// Write renders t to w. Only the generated positions are printed,
// whatever the declared size.
func Write(w io.Writer, t *movement.Table, opts Options) error {
	size := opts.Size
	if size <= 0 {
		size = t.Capacity()
	}

	var text string
	switch opts.Format {
	case "", FormatC:
		text = cSource(t, size, opts.Columns)
	case FormatGo:
		pkg := opts.Package
		if pkg == "" {
			pkg = DefaultPackage
		}
		if err := ValidatePackage(pkg); err != nil {
			return err
		}
		text = goSource(t, size, opts.Columns, pkg)
	default:
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, opts.Format, strings.Join(Formats(), ", "))
	}

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// cSource produces:
//
//	#define movement_30deg_size 37
//	int movement_positions_30deg[movement_30deg_size] = {0,1,1,...,30};
func cSource(t *movement.Table, size, columns int) string {
	angle := t.Profile.Angle
	sizeName := fmt.Sprintf("movement_%ddeg_size", angle)

	var b strings.Builder
	fmt.Fprintf(&b, "\n#define %s %d\n", sizeName, size)
	fmt.Fprintf(&b, "int movement_positions_%ddeg[%s] = {", angle, sizeName)
	b.WriteString(joinValues(t.Positions(), ",", columns, ",\n\t"))
	b.WriteString("};\n\n")
	return b.String()
}

// goSource produces a gofmt-clean file declaring a size constant and a
// fixed-size array.
func goSource(t *movement.Table, size, columns int, pkg string) string {
	angle := t.Profile.Angle
	sizeName := fmt.Sprintf("movement%ddegSize", angle)

	var b strings.Builder
	b.WriteString("// Code generated by movegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "// %s\n", t.Profile)
	fmt.Fprintf(&b, "const %s = %d\n\n", sizeName, size)
	fmt.Fprintf(&b, "var movementPositions%ddeg = [%s]int{", angle, sizeName)
	if columns > 0 {
		b.WriteString("\n\t")
		b.WriteString(joinValues(t.Positions(), ", ", columns, ",\n\t"))
		b.WriteString(",\n}\n")
	} else {
		b.WriteString(joinValues(t.Positions(), ", ", 0, ""))
		b.WriteString("}\n")
	}
	return b.String()
}

// joinValues joins values with sep, replacing the separator with lineSep
// after every columns values when columns > 0.
func joinValues(values []int, sep string, columns int, lineSep string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			if columns > 0 && i%columns == 0 {
				debug.Trace("Wrapping line before value %d (index %d)", v, i)
				b.WriteString(lineSep)
			} else {
				b.WriteString(sep)
			}
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
