// Package dayfmt converts between the URL form of a day key (01_01_2020)
// and the storage form (01/01/2020). Malformed input passes through.
package dayfmt

import "strings"

// ToStorageKey turns a dd_mm_yyyy path segment into the dd/mm/yyyy key
// used inside the store.
func ToStorageKey(segment string) string {
	return strings.ReplaceAll(segment, "_", "/")
}

// ToPathSegment is the inverse of ToStorageKey.
func ToPathSegment(day string) string {
	return strings.ReplaceAll(day, "/", "_")
}
