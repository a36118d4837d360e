package geo

import "fmt"

// ConvertSeconds splits a total number of seconds into whole minutes and
// the remaining seconds.
func ConvertSeconds(total int) (min, sec int) {
	return total / 60, total % 60
}

// zeroPadSeconds renders remaining seconds, zero-padding values below 10.
func zeroPadSeconds(sec int) string {
	if sec < 10 {
		return fmt.Sprintf("0%d", sec)
	}
	return fmt.Sprintf("%d", sec)
}

// FormatDuration renders a travel time in seconds as "M:SS":
// 125 -> "2:05", 59 -> "0:59", 3600 -> "60:00". Minutes do not roll over
// into hours; this is a direct formatting rule, not a duration formatter.
func FormatDuration(seconds int) string {
	min, sec := ConvertSeconds(seconds)
	return fmt.Sprintf("%d:%s", min, zeroPadSeconds(sec))
}

// FormatDistance renders a distance in meters as kilometers with one
// decimal, e.g. 1234.0 -> "1.2".
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.1f", meters/1000)
}

// RouteSummary renders the fixed two-line route description shown to the
// user.
func RouteSummary(r *Route) string {
	return fmt.Sprintf("Distance: %s km\nTime: %s",
		FormatDistance(r.Distance), FormatDuration(int(r.Duration)))
}
