// Package report renders curriculum analyses.
//
// Analyze gathers everything a report shows in one pass: per-course metrics,
// statistics, homology, a topological order and the longest path. The
// Analysis is then written as JSON, YAML, or a styled text table (lipgloss,
// plain when w is not a terminal). Mermaid draws the requisite graph itself:
// pre-requisites as solid arrows, co-requisites dotted, strict co-requisites
// thick, strict groups boxed, and the longest path highlighted.
package report
