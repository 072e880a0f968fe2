// Package classify implements the classification rule engine.
//
// Classification is data-driven in two stages: feature extraction derives a
// set of satisfied trigger tags from the identifier, then each catalog entry
// is included when its declared tags intersect the satisfied set. Keeping
// both stages as pure functions makes every catalog entry testable in
// isolation and avoids a chain of conditional branches.
package classify
