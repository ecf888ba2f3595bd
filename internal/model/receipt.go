package model

import "time"

// Receipt is the trace a successful submission leaves behind. It lives in
// the in-memory cache only, so it survives exactly as long as the process.
type Receipt struct {
	RequestID int       `db:"RequestID"`
	CreatedAt time.Time `db:"CreatedAt"`
}
