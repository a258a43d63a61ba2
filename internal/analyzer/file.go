package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/contentaudit/internal/model"
	"github.com/nao1215/contentaudit/internal/phase"
)

// File names the adapters look for inside the analysis directory.
// One file per analyzer domain, named after the phase it feeds.
const (
	// FoundationFile holds raw structural-foundation analyzer output.
	FoundationFile = "foundation.json"
	// EAVFile holds raw attribute-consistency analyzer output.
	EAVFile = "eav.json"
	// QualityFile holds raw content-quality checklist output.
	QualityFile = "quality.json"
	// FlowFile holds raw link-structure analyzer output.
	FlowFile = "flow.json"
)

// readInto decodes the JSON file at path into v. It reports (false, nil)
// when the file does not exist, which callers treat as "no input".
func readInto(path string, v any) (bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Host-provided analysis path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read analyzer output %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode analyzer output %s: %w", path, err)
	}
	return true, nil
}

// FileFoundationAnalyzer reads structural-foundation output from disk.
type FileFoundationAnalyzer struct {
	path string
}

// DetectStructure decodes the foundation analysis file.
// Returns nil analysis when the file is absent.
func (a *FileFoundationAnalyzer) DetectStructure(ctx context.Context, _ *model.AuditRequest) (*phase.FoundationAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var analysis phase.FoundationAnalysis
	ok, err := readInto(a.path, &analysis)
	if err != nil || !ok {
		return nil, err
	}
	return &analysis, nil
}

// FileEAVAnalyzer reads attribute-consistency output from disk.
type FileEAVAnalyzer struct {
	path string
}

// CheckConsistency decodes the EAV consistency file.
// Returns nil consistency when the file is absent.
func (a *FileEAVAnalyzer) CheckConsistency(ctx context.Context, _ *model.AuditRequest) (*phase.EAVConsistency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var consistency phase.EAVConsistency
	ok, err := readInto(a.path, &consistency)
	if err != nil || !ok {
		return nil, err
	}
	return &consistency, nil
}

// FileQualityAnalyzer reads checklist evaluation output from disk.
type FileQualityAnalyzer struct {
	path string
}

// EvaluateChecklist decodes the quality checklist file.
// Returns an empty check list when the file is absent.
func (a *FileQualityAnalyzer) EvaluateChecklist(ctx context.Context, _ *model.AuditRequest) ([]phase.QualityCheck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var checks []phase.QualityCheck
	if _, err := readInto(a.path, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}

// FileFlowAnalyzer reads link-structure output from disk.
type FileFlowAnalyzer struct {
	path string
}

// AnalyzeFlow decodes the flow analysis file.
// Returns nil analysis when the file is absent.
func (a *FileFlowAnalyzer) AnalyzeFlow(ctx context.Context, _ *model.AuditRequest) (*phase.FlowAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var analysis phase.FlowAnalysis
	ok, err := readInto(a.path, &analysis)
	if err != nil || !ok {
		return nil, err
	}
	return &analysis, nil
}

// FromDirectory builds the full analyzer bundle over a directory of raw
// analyzer output files. Files may be absent individually; each absent
// file just neutralizes its phase.
func FromDirectory(dir string) phase.Analyzers {
	return phase.Analyzers{
		Foundation: &FileFoundationAnalyzer{path: filepath.Join(dir, FoundationFile)},
		EAV:        &FileEAVAnalyzer{path: filepath.Join(dir, EAVFile)},
		Quality:    &FileQualityAnalyzer{path: filepath.Join(dir, QualityFile)},
		Flow:       &FileFlowAnalyzer{path: filepath.Join(dir, FlowFile)},
	}
}
