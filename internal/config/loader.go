package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/contentaudit/internal/model"
)

// ErrRequestNotFound is returned when the audit request file does not exist.
var ErrRequestNotFound = errors.New("audit request file not found")

// LoadRequest loads an AuditRequest from a YAML file and validates it.
// If the file does not exist, it returns ErrRequestNotFound so the CLI
// can distinguish "wrong path" from "bad content".
//
// Missing optional fields get the engine defaults: type "internal",
// depth "quick", and an empty phase list meaning every registered phase.
func LoadRequest(path string) (*model.AuditRequest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided request path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRequestNotFound, path)
		}
		return nil, err
	}

	var req model.AuditRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse audit request %s: %w", path, err)
	}

	if req.Type == "" {
		req.Type = model.AuditTypeInternal
	}
	if req.Depth == "" {
		req.Depth = model.DepthQuick
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("audit request %s: %w", path, err)
	}

	return &req, nil
}
