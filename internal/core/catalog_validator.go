package core

import (
	"context"
	"strconv"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"recs-data/internal/types"
)

type CatalogValidator struct{}

func NewCatalogValidator() CatalogValidator {
	return CatalogValidator{}
}

func (v CatalogValidator) ValidateTable(ctx context.Context, table types.TableSchema) error {
	assert.NotEmpty(ctx, table.ID, "table id must be set")
	if table.Units <= 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("table " + table.ID + ": units must be positive")
	}
	if table.Rows == nil || table.Columns == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("table " + table.ID + ": rows and columns must both be defined")
	}
	if err := validateTree(table.ID, types.AxisRows, table.Rows, nil); err != nil {
		return err
	}
	return validateTree(table.ID, types.AxisColumns, table.Columns, nil)
}

func validateTree(tableID string, axis types.Axis, node *types.Node, path types.KeyPath) error {
	if node.IsLeaf() {
		return validateLeaf(tableID, axis, node.Value(), path)
	}
	if node.Len() == 0 {
		return invalidTree(tableID, axis, path, "branch has no children")
	}
	for _, key := range node.Keys() {
		if key == "" {
			return invalidTree(tableID, axis, path, "empty key")
		}
		child, _ := node.Child(key)
		if err := validateTree(tableID, axis, child, append(append(types.KeyPath{}, path...), key)); err != nil {
			return err
		}
	}
	return nil
}

func validateLeaf(tableID string, axis types.Axis, value string, path types.KeyPath) error {
	switch axis {
	case types.AxisRows:
		row, err := strconv.Atoi(value)
		if err != nil || row <= 0 {
			return invalidTree(tableID, axis, path, "row must be a positive integer, got "+strconv.Quote(value))
		}
	case types.AxisColumns:
		if !isColumnLetters(value) {
			return invalidTree(tableID, axis, path, "column must be upper-case letters, got "+strconv.Quote(value))
		}
	}
	return nil
}

// isColumnLetters accepts A through XFD, the widest sheet Excel writes.
func isColumnLetters(value string) bool {
	if value == "" || len(value) > 3 {
		return false
	}
	for _, r := range value {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return len(value) < 3 || value <= "XFD"
}

func invalidTree(tableID string, axis types.Axis, path types.KeyPath, reason string) error {
	location := string(axis)
	if len(path) > 0 {
		location += types.KeyPathSeparator + path.String()
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("table " + tableID + ": " + location + ": " + reason)
}
