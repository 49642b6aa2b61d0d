package strictness

// Guaranteed is implemented by types with a fallible factory signature whose
// factory nonetheless cannot actually fail. The marker admits the type to
// lifecycle operations under strict builds.
type Guaranteed interface {
	FactoryNeverFails()
}

// Admits reports whether a value with a fallible factory may participate in
// lifecycle operations under the current build. Relaxed builds admit
// everything; strict builds require the Guaranteed marker.
func Admits(v any) bool {
	if !Enabled {
		return true
	}
	_, ok := v.(Guaranteed)
	return ok
}
