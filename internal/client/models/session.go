package models

import "time"

// SessionMarker names the user that is currently signed in. At most one
// marker exists per local store.
type SessionMarker struct {
	Email         string
	EstablishedAt time.Time
}
