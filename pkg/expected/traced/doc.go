// Package traced adds opt-in provenance to a Result: a unique id and a UTC
// creation timestamp, carried across derivations so a pipeline outcome can
// be tied back to the step that produced its origin. The core Result stays
// free of this overhead; wrap only where the bookkeeping pays for itself.
package traced
