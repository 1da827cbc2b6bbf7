package types

import "sort"

// Updates maps contact field names to new values for Book.EditContact.
// Recognized names are the Field constants. An empty address clears it.
type Updates map[string]string

// Keys returns the update field names in sorted order, the order in which
// EditContact applies them.
func (u Updates) Keys() []string {
	keys := make([]string, 0, len(u))
	for k := range u {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsContactField reports whether name is one of the five contact fields.
func IsContactField(name string) bool {
	for _, f := range ContactFields {
		if f == name {
			return true
		}
	}
	return false
}
