// Package pipeline assembles scan reports by executing the classification,
// breach lookup, scoring, and cleanup planning stages in sequence.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It allows easy addition/removal of stages without modifying core logic
// 2. It provides consistent error handling and logging across stages
// 3. It supports cancellation via context for the network-bound breach stage
// 4. It keeps concurrency at the edges: each scan owns its report, so stages
//    never share mutable state across scans
//
// The package also provides batch processing of multiple identifiers with
// bounded concurrency using errgroup.
package pipeline
