// Package main provides the entry point for the contentaudit CLI.
//
// contentaudit runs multi-phase content quality audits. Each phase
// inspects one independent dimension of the content (structural
// foundation, attribute consistency, content quality rules, link
// structure, and more) and the results are folded into a single
// severity-weighted report.
//
// Usage:
//
//	contentaudit audit -f request.yaml
//	contentaudit audit -f request.yaml --analysis ./analysis --markdown
//
// See --help for all available options.
package main

// main is the entry point for contentaudit.
func main() {
	Execute()
}
