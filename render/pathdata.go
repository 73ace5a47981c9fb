package render

import (
	"fmt"
	"strings"
)

// PathData returns the arcs of a kind as SVG path data. Traced arcs form a
// single closed subpath; leftover arcs get a subpath each.
func (d Drawing) PathData(kind ArcKind) string {
	var sb strings.Builder
	open := false
	for _, a := range d.Arcs {
		if a.Kind != kind {
			continue
		}
		if !open || kind == Leftover {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "M%s,%s", d.num(a.From.X()), d.num(a.From.Y()))
			open = true
		}
		fmt.Fprintf(&sb, " A%s,%s %s %d %d %s,%s",
			d.num(a.Rx), d.num(a.Ry), d.num(a.RotationDeg),
			flag(a.LargeArc), flag(a.Sweep),
			d.num(a.To.X()), d.num(a.To.Y()))
	}
	if open && kind == Traced {
		sb.WriteString(" Z")
	}
	return sb.String()
}

func (d Drawing) num(x float64) string {
	return fmt.Sprintf("%.*f", d.Precision, x)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
