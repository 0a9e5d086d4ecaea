package judge

import (
	"strconv"
	"strings"

	"github.com/ebiym/geom2d/geom"
)

// Judge output is fixed-decimal: a result like 1e-11 must print as
// 0.0000000000, never in exponential notation. Formatting lives here so
// the geometry core stays free of presentation concerns.

// FormatFloat renders v with the given number of decimals. Values that
// round to zero lose their sign, so a tiny negative residue cannot show
// up as "-0.0000000000".
func FormatFloat(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.Trim(s, "-0.") == "" {
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

// FormatPoint renders both coordinates separated by a space, the way
// the judge expects point answers.
func FormatPoint(p geom.Point, digits int) string {
	return FormatFloat(p.X, digits) + " " + FormatFloat(p.Y, digits)
}

// FormatInt renders a discrete classification answer.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}
