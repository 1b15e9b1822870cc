// Package report formats runs for the terminal: a per-step console
// observer, a styled summary, comparison tables and ASCII charts.
package report
