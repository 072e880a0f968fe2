// Package main provides the entry point for the footmap CLI.
//
// footmap is a personal data-exposure estimator: given an email address or
// username, it reports which categories of online platforms the identifier
// is likely registered on, an aggregate risk score, known public breaches,
// and a prioritized cleanup plan.
//
// Usage:
//
//	footmap scan <identifier>...
//	footmap serve
//
// See --help for all available options.
package main

// main is the entry point for footmap.
func main() {
	Execute()
}
