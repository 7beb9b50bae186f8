// Package location holds the zone day-granularity rules evaluate in.
package location

import "time"

// Location defaults to the process zone until the configured timezone is
// loaded at startup.
var Location = time.Local

func Set(loc *time.Location) {
	if loc != nil {
		Location = loc
	}
}
