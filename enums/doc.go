// Package enums defines the closed string value sets used by the TrackBear
// API: record lifecycle states, project workflow phases, tally measures, and
// tag colors.
//
// Each enum is a string type with exported constants for every member, a
// Valid method, and a Parse function that coerces an arbitrary string into a
// member. Parse is idempotent for values that are already members and returns
// an *InvalidValueError for anything outside the set. The same coercion is
// applied at both boundaries: caller-supplied filter or save parameters are
// validated before a request is issued, and values returned by the service
// are validated while building records.
package enums
