package adapters

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"recs-data/internal/core"
	"recs-data/internal/ports"
	"recs-data/internal/shared"
	"recs-data/internal/types"
)

// BuiltinCatalogName is the layer name reported for the compiled-in
// catalog.
const BuiltinCatalogName = "builtin:recs2015"

//go:embed catalog/recs2015.yaml
var builtinCatalog []byte

// catalogFile is the top-level structure of a catalog document. Tables
// stay a raw node so that key order survives decoding and duplicate keys
// inside a tree can be reported instead of silently collapsing.
type catalogFile struct {
	CatalogVersion string            `yaml:"catalog_version"`
	Release        string            `yaml:"release"`
	Sources        map[string]string `yaml:"sources"`
	Tables         yaml.Node         `yaml:"tables"`
}

// SchemaCatalogAdapter implements CatalogPort. The compiled-in catalog is
// loaded first; overlays replace whole tables by id.
type SchemaCatalogAdapter struct {
	tables    map[string]types.TableSchema
	sources   map[string]types.TableSource
	layers    []string
	validator core.CatalogValidator
}

// NewSchemaCatalogAdapter returns a catalog holding the compiled-in
// tables.
func NewSchemaCatalogAdapter() (*SchemaCatalogAdapter, error) {
	a := NewEmptySchemaCatalogAdapter()
	if err := a.LoadCatalog(builtinCatalog, BuiltinCatalogName); err != nil {
		return nil, err
	}
	return a, nil
}

// NewEmptySchemaCatalogAdapter returns a catalog with no layers.
func NewEmptySchemaCatalogAdapter() *SchemaCatalogAdapter {
	return &SchemaCatalogAdapter{
		tables:    map[string]types.TableSchema{},
		sources:   map[string]types.TableSource{},
		validator: core.NewCatalogValidator(),
	}
}

func (a *SchemaCatalogAdapter) LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read catalog file: " + path).
			WithCause(err)
	}
	return a.LoadCatalog(data, path)
}

// LoadCatalog parses a catalog document and merges it as a new layer. A
// document that fails validation leaves the catalog untouched.
func (a *SchemaCatalogAdapter) LoadCatalog(data []byte, origin string) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog file: " + origin).
			WithCause(err)
	}
	if strings.TrimSpace(file.CatalogVersion) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog file missing catalog_version: " + origin)
	}

	tables, err := decodeTables(&file.Tables, origin)
	if err != nil {
		return err
	}
	ctx := context.Background()
	for _, table := range tables {
		if err := a.validator.ValidateTable(ctx, table); err != nil {
			return err
		}
	}

	release := strings.TrimSpace(file.Release)
	for id, title := range file.Sources {
		normalized := shared.NormalizeTableID(id)
		if normalized == "" {
			continue
		}
		_, structured := a.tables[normalized]
		a.sources[normalized] = types.TableSource{
			Release:    release,
			ID:         normalized,
			Title:      strings.TrimSpace(title),
			Structured: structured,
		}
	}
	for _, table := range tables {
		if _, exists := a.tables[table.ID]; exists {
			log.Debug().
				Str("table", table.ID).
				Str("layer", origin).
				Msg("table overridden by later catalog layer")
		}
		source := a.sources[table.ID]
		source.ID = table.ID
		source.Structured = true
		if source.Release == "" {
			source.Release = release
		}
		if table.Title == "" {
			table.Title = source.Title
		} else {
			source.Title = table.Title
		}
		a.sources[table.ID] = source
		a.tables[table.ID] = table
	}

	a.layers = append(a.layers, origin)
	log.Debug().
		Str("layer", origin).
		Int("tables", len(tables)).
		Int("total", len(a.tables)).
		Msg("catalog layer loaded")
	return nil
}

func (a *SchemaCatalogAdapter) Table(id string) (types.TableSchema, bool) {
	table, ok := a.tables[shared.NormalizeTableID(id)]
	return table, ok
}

// Sources lists every advertised table ordered by release and id.
func (a *SchemaCatalogAdapter) Sources() []types.TableSource {
	out := make([]types.TableSource, 0, len(a.sources))
	for _, source := range a.sources {
		out = append(out, source)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Release != out[j].Release {
			return out[i].Release < out[j].Release
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Layers returns the catalog layers in load order.
func (a *SchemaCatalogAdapter) Layers() []string {
	return append([]string(nil), a.layers...)
}

func decodeTables(node *yaml.Node, origin string) ([]types.TableSchema, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, catalogError(origin, node, "tables must be a mapping")
	}
	seen := map[string]int{}
	var tables []types.TableSchema
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		id := shared.NormalizeTableID(keyNode.Value)
		if id == "" {
			return nil, catalogError(origin, keyNode, "empty table id")
		}
		if line, dup := seen[id]; dup {
			return nil, catalogError(origin, keyNode, fmt.Sprintf("duplicate table %q (first defined on line %d)", id, line))
		}
		seen[id] = keyNode.Line
		table, err := decodeTable(id, valueNode, origin)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func decodeTable(id string, node *yaml.Node, origin string) (types.TableSchema, error) {
	node = unalias(node)
	if node.Kind != yaml.MappingNode {
		return types.TableSchema{}, catalogError(origin, node, "table "+id+" must be a mapping")
	}
	table := types.TableSchema{ID: id}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], unalias(node.Content[i+1])
		var err error
		switch keyNode.Value {
		case "title":
			table.Title = strings.TrimSpace(valueNode.Value)
		case "units":
			table.Units, err = strconv.ParseFloat(strings.TrimSpace(valueNode.Value), 64)
			if err != nil {
				return types.TableSchema{}, catalogError(origin, valueNode, "table "+id+": units must be a number")
			}
		case "columns":
			table.Columns, err = decodeTree(types.AxisColumns, valueNode, nil, origin)
		case "rows":
			table.Rows, err = decodeTree(types.AxisRows, valueNode, nil, origin)
		default:
			return types.TableSchema{}, catalogError(origin, keyNode, "table "+id+": unknown field "+strconv.Quote(keyNode.Value))
		}
		if err != nil {
			return types.TableSchema{}, err
		}
	}
	return table, nil
}

// decodeTree builds a row or column tree. Scalars become leaves and
// mappings become branches; a key repeated within one mapping is an
// error rather than a silent override.
func decodeTree(axis types.Axis, node *yaml.Node, path types.KeyPath, origin string) (*types.Node, error) {
	node = unalias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		return types.NewLeaf(strings.TrimSpace(node.Value)), nil
	case yaml.MappingNode:
		branch := types.NewBranch()
		lines := map[string]int{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			key := strings.TrimSpace(keyNode.Value)
			childPath := append(append(types.KeyPath{}, path...), key)
			child, err := decodeTree(axis, node.Content[i+1], childPath, origin)
			if err != nil {
				return nil, err
			}
			if !branch.Add(key, child) {
				return nil, catalogError(origin, keyNode, fmt.Sprintf("duplicate key %q at %s (first defined on line %d)", key, treeLocation(axis, path), lines[key]))
			}
			lines[key] = keyNode.Line
		}
		return branch, nil
	default:
		return nil, catalogError(origin, node, treeLocation(axis, path)+" must be a scalar or a mapping")
	}
}

func unalias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func treeLocation(axis types.Axis, path types.KeyPath) string {
	if len(path) == 0 {
		return string(axis)
	}
	return string(axis) + types.KeyPathSeparator + path.String()
}

func catalogError(origin string, node *yaml.Node, msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s:%d: %s", origin, node.Line, msg))
}

var _ ports.CatalogPort = (*SchemaCatalogAdapter)(nil)
