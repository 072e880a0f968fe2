// Package model defines the core data structures used throughout footmap.
//
// This package contains the following main types:
//   - IdentifierType: The kind of identifier being scanned (email or username)
//   - ScanReport: The main scan result structure
//   - ExposureCategory: A class of platforms an identifier is likely registered with
//   - BreachRecord: A third-party-reported historical data leak
//   - CleanupAction: A prioritized remediation step
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (classify, scoring, breach, report) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for API responses and
// report output.
package model
