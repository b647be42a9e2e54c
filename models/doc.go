// Package models defines the immutable domain records returned by the
// TrackBear API and the validating factories that construct them.
//
// # Records
//
// Every record mirrors one wire shape of the service:
//
//   - Balance: the six progress counters (word, time, page, chapter, scene, line)
//   - Project / ProjectStub: a writing project; the stub is the reduced shape
//     returned by mutation endpoints and embedded in tallies
//   - Tag: a named, colored label
//   - Tally: a single progress entry with its project snapshot and tag snapshots
//   - Stat: a per-day aggregate of counters
//   - Leaderboard / LeaderboardExtended: a board with member and team listings;
//     the extended variant carries computed totals per member and team
//
// # Building
//
// Records are never populated ad hoc from partially trusted data. Each type
// exposes a Build function taking the decoded JSON object:
//
//	project, err := models.BuildProject(data)
//
// Build functions access required keys strictly, coerce enum-valued strings
// through the enums package, and map the service's camelCase key names onto
// the record fields (createdAt → CreatedAt, ownerId → OwnerID, and so on).
// Balance-shaped sub-objects are themselves required, but any counter missing
// inside one defaults to zero.
//
// A missing key, a mistyped value, or an unknown enum member produces a
// *ModelBuildError naming the target record and carrying the serialized
// input. Failures inside nested records (the project stub or tags of a tally)
// surface as a single error for the outermost record being built.
//
// Records marshal back to the wire shape through their json tags, so
// json.Marshal of a built record round-trips through its Build function.
package models
