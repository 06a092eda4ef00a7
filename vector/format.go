package vector

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the live elements as [e0, e1, ..., en].
func (v *Vector[T]) String() string {
	var sb strings.Builder
	v.writeElems(&sb, "%v", ", ")
	return sb.String()
}

// Format implements fmt.Formatter.
//
//	%v, %s  compact form, same as String
//	%+v     VECTOR { SIZE: n, CAPACITY: c, FIXED: b, CONTENTS: [...] }
//	%#v     the verbose form spread over several lines
//
// Verbose forms render elements with %#v, so strings are quoted.
func (v *Vector[T]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		io.WriteString(f, v.multiLine())
	case verb == 'v' && f.Flag('+'):
		io.WriteString(f, v.singleLine())
	case verb == 'v' || verb == 's':
		io.WriteString(f, v.String())
	default:
		fmt.Fprintf(f, "%%!%c(vector=%s)", verb, v.String())
	}
}

func (v *Vector[T]) singleLine() string {
	var sb strings.Builder
	sb.WriteString("VECTOR { SIZE: ")
	sb.WriteString(strconv.Itoa(v.size))
	sb.WriteString(", CAPACITY: ")
	sb.WriteString(strconv.Itoa(len(v.buf)))
	sb.WriteString(", FIXED: ")
	sb.WriteString(strconv.FormatBool(v.fixed))
	sb.WriteString(", CONTENTS: ")
	v.writeElems(&sb, "%#v", ", ")
	sb.WriteString(" }")
	return sb.String()
}

func (v *Vector[T]) multiLine() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "VECTOR {\n  SIZE: %d,\n  CAPACITY: %d,\n  FIXED: %t,\n  CONTENTS:\n", v.size, len(v.buf), v.fixed)
	if v.size == 0 {
		sb.WriteString("  []\n}")
		return sb.String()
	}
	sb.WriteString("  [\n")
	for i := range v.size {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString("   ")
		fmt.Fprintf(&sb, "%#v", v.buf[i])
	}
	sb.WriteString("\n  ]\n}")
	return sb.String()
}

func (v *Vector[T]) writeElems(sb *strings.Builder, elemVerb, sep string) {
	sb.WriteByte('[')
	for i := range v.size {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprintf(sb, elemVerb, v.buf[i])
	}
	sb.WriteByte(']')
}
