package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/romanconv/internal/ctxlog"
	"github.com/specialistvlad/romanconv/internal/fsutil"
	"github.com/specialistvlad/romanconv/internal/numeralexpr"
)

var _ Loader = (*HCLLoader)(nil)

// HCLLoader is the HCL implementation of the Loader interface.
type HCLLoader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *HCLLoader {
	return &HCLLoader{}
}

// Load parses and decodes every .hcl file under paths, merging them in the
// order found. A path that does not exist is an error. Directories are walked
// in lexical order.
func (l *HCLLoader) Load(ctx context.Context, paths ...string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL config loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := numeralexpr.EvalContext()
	merged := &File{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var decoded File
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &decoded)
		numeralexpr.RaiseInternal(diags)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		merged.Merge(&decoded)
		logger.Debug("Config file merged.", "file", file)
	}

	return merged, nil
}
