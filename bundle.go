package pm

import "encoding/json"

// Bundle is an opaque structured payload attached to suspensions (app and
// launcher extras). The engine never inspects its contents; it only needs
// value-style cloning for callers that want detached copies.
type Bundle map[string]any

// Clone returns a deep copy of the bundle via a JSON round-trip, which also
// normalizes nested values to plain maps, slices, and scalars. Returns nil
// for an empty bundle and for payloads that cannot survive the round-trip.
func (b Bundle) Clone() Bundle {
	if len(b) == 0 {
		return nil
	}
	buffer, err := json.Marshal(b)
	if err != nil {
		return nil
	}
	var out Bundle
	if err := json.Unmarshal(buffer, &out); err != nil {
		return nil
	}
	return out
}

// IsEmpty reports whether the bundle carries no entries.
func (b Bundle) IsEmpty() bool {
	return len(b) == 0
}
