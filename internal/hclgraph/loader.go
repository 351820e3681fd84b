package hclgraph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/strgraphgo/internal/ctxlog"
	"github.com/vk/strgraphgo/internal/schema"
)

// Loader is the HCL implementation of schema.Loader.
type Loader struct{}

// NewLoader creates a new HCL graph description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// nodeBlock decodes a single `node "<id>"` block. Value and constants stay
// as expressions so non-string primitives can be converted afterwards.
type nodeBlock struct {
	ID        string         `hcl:"id,label"`
	Type      string         `hcl:"type,optional"`
	Value     hcl.Expression `hcl:"value,optional"`
	Op        string         `hcl:"op,optional"`
	Inputs    []string       `hcl:"inputs,optional"`
	Constants hcl.Expression `hcl:"constants,optional"`
	Remain    hcl.Body       `hcl:",remain"`
}

// fileRoot decodes the top-level blocks of a graph file. Unknown
// attributes fall into Remain and are ignored, mirroring the JSON
// contract.
type fileRoot struct {
	Nodes  []*nodeBlock `hcl:"node,block"`
	Target string       `hcl:"target,optional"`
	Remain hcl.Body     `hcl:",remain"`
}

// Load parses the HCL file or directory at path into a Description.
// Directories are walked for .hcl files, merged in lexical path order.
func (l *Loader) Load(ctx context.Context, path string) (*schema.Description, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findHCLFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL graph files.", "count", len(files))

	desc := &schema.Description{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, &schema.Error{Msg: fmt.Sprintf("failed to parse HCL file %s: %s", file, diags.Error())}
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, &schema.Error{Msg: fmt.Sprintf("failed to decode HCL file %s: %s", file, diags.Error())}
		}

		for _, block := range root.Nodes {
			nd, err := translateNode(block)
			if err != nil {
				return nil, err
			}
			desc.Nodes = append(desc.Nodes, nd)
		}
		if root.Target != "" {
			desc.TargetNode = root.Target
		}
	}

	logger.Debug("HCL graph loading complete.", "nodes", len(desc.Nodes), "target", desc.TargetNode)
	return desc, nil
}

// translateNode converts a decoded node block into the format-agnostic
// description entry.
func translateNode(block *nodeBlock) (schema.NodeDescription, error) {
	nd := schema.NodeDescription{
		ID:     block.ID,
		Type:   block.Type,
		Op:     block.Op,
		Inputs: block.Inputs,
	}

	value, present, err := evalString(block.Value)
	if err != nil {
		return schema.NodeDescription{}, schema.Errorf(block.ID, "invalid 'value': %v", err)
	}
	if present {
		nd.Value = &value
	}

	constants, err := evalStringList(block.Constants)
	if err != nil {
		return schema.NodeDescription{}, schema.Errorf(block.ID, "invalid 'constants': %v", err)
	}
	nd.Constants = constants

	return nd, nil
}

// findHCLFiles resolves path to the sorted list of .hcl files it names.
func findHCLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("graph path %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".hcl") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking graph path %s: %w", path, err)
	}
	sort.Strings(files)
	return files, nil
}
