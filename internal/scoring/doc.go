// Package scoring aggregates classification and breach results into the
// 0-100 exposure score and generates the prioritized cleanup plan.
package scoring
