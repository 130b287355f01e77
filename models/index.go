package models

import "time"

// SyncIndex is the single remote manifest. It maps record identifiers to
// their obfuscated remote object names and carries a counter that strictly
// increases with every successful push from any device. A remote index with
// a counter lower than the last locally observed value must never be
// accepted (anti-rollback).
//
// The index is rebuilt in full on every push, so the map always reflects
// exactly the pusher's local record set at push time.
type SyncIndex struct {
	LastUpdated time.Time         `json:"last_updated"`
	Counter     int64             `json:"counter"`
	Objects     map[string]string `json:"objects"`
}
