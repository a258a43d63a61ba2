// Package report renders audit reports for human and machine consumption.
//
// The engine core owns no output format; this package is part of the host
// layer and depends one-way on model. It provides three writers behind a
// common interface: a human-readable terminal format, JSON for tool
// integration, and GitHub Flavored Markdown for documentation and sharing.
package report
