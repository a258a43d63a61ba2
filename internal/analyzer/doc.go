// Package analyzer provides file-backed implementations of the phase
// analyzer interfaces.
//
// The engine treats analyzers as external collaborators: something else
// decides whether an issue exists. When that something runs out of process
// (a batch job, another service, a model pipeline), its raw output lands
// on disk as JSON. This package is the bridge: each adapter decodes one
// file into the raw issue shape its phase's normalizer expects.
//
// A missing file means the analyzer has nothing to say for this run; the
// adapter reports that as "no input", which the phase resolves to a
// neutral result. A malformed file is an analyzer failure and likewise
// degrades the phase rather than the run.
package analyzer
