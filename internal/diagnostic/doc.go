// Package diagnostic provides structured errors, warnings and notes reported
// while checking generator inputs.
//
// Key capabilities:
//   - Configuration checks (dimension range, package naming)
//   - Template lint results for primitive expansion
//   - A single combined error for callers that only need pass or fail
package diagnostic
