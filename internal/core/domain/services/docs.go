// Package services provides the pure domain computations over orders that do not belong
// to the Order aggregate itself.
//
// The package includes:
//   - Requested time resolution: structured field first, legacy "time:" marker in notes second
//   - Urgency: due instant construction with the day-rollover heuristics, minutes until due
//     and the Urgent/Warning/Normal classification
//   - Projection: the active-order base list, the grouped-by-platform board and the
//     filtered and sorted flat list
//
// Every function here is deterministic for a given "now"; nothing is cached.
package services
