package obs

import (
	"log"
	"time"
)

// Time logs the duration of a named operation on return. Use with defer:
//
//	defer obs.Time("plan route")(&err)
func Time(name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
