package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"recs-data/internal/ports"
	"recs-data/internal/types"
)

const missingKeyPrefix = "unknown "

// PathResolverCore looks up a published figure by walking a row path and
// a column path through a table schema.
type PathResolverCore struct{}

func NewPathResolverCore() PathResolverCore {
	return PathResolverCore{}
}

// Resolve descends rows and columns independently. When both descents
// end on leaves and the addressed cell holds a number, the result is the
// cell value scaled by the table units. Otherwise the result is partial:
// a branch is reported as its child keys and a leaf is passed through.
//
// A path segment that is not a key of the node it is applied to is an
// error with code NotFound; see IsMissingKey.
func (r PathResolverCore) Resolve(ctx context.Context, sheet ports.Sheet, table types.TableSchema, rows types.KeyPath, columns types.KeyPath) (types.Resolution, error) {
	assert.NotEmpty(ctx, table.ID, "table id must be set")
	if table.Rows == nil || table.Columns == nil {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("table " + table.ID + " has no row or column structure")
	}

	rowNode, err := descend(table.Rows, types.AxisRows, rows)
	if err != nil {
		return types.Resolution{}, err
	}
	colNode, err := descend(table.Columns, types.AxisColumns, columns)
	if err != nil {
		return types.Resolution{}, err
	}

	if rowNode.IsLeaf() && colNode.IsLeaf() {
		address := colNode.Value() + rowNode.Value()
		value, err := readScaled(sheet, address, table.Units)
		if err == nil {
			log.Debug().
				Str("table", table.ID).
				Str("address", address).
				Float64("value", value).
				Msg("path resolved")
			return types.Resolved(address, value), nil
		}
		log.Debug().
			Str("table", table.ID).
			Str("address", address).
			Err(err).
			Msg("cell not usable, returning remainder")
	}
	return types.Partial(types.RemainderOf(rowNode), types.RemainderOf(colNode)), nil
}

// IsMissingKey reports whether err was raised for a path segment that
// does not exist in the schema, as opposed to any other failure.
func IsMissingKey(err error) bool {
	if err == nil || errbuilder.CodeOf(err) != errbuilder.CodeNotFound {
		return false
	}
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return strings.HasPrefix(builder.Msg, missingKeyPrefix)
	}
	return false
}

func descend(root *types.Node, axis types.Axis, path types.KeyPath) (*types.Node, error) {
	node := root
	for i, key := range path {
		child, ok := node.Child(key)
		if !ok {
			return nil, missingKeyError(axis, path[:i], key, node)
		}
		node = child
	}
	return node, nil
}

func missingKeyError(axis types.Axis, parent types.KeyPath, key string, node *types.Node) error {
	location := string(axis)
	if len(parent) > 0 {
		location += types.KeyPathSeparator + parent.String()
	}
	msg := fmt.Sprintf("%s%s key %q at %s", missingKeyPrefix, axisNoun(axis), key, location)
	if node.IsLeaf() {
		msg += " (path already ends at " + node.Value() + ")"
	} else {
		msg += "; available: " + strings.Join(node.Keys(), ", ")
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(msg)
}

func axisNoun(axis types.Axis) string {
	if axis == types.AxisColumns {
		return "column"
	}
	return "row"
}

func readScaled(sheet ports.Sheet, address string, units float64) (float64, error) {
	if sheet == nil {
		return 0, fmt.Errorf("no sheet to read %s from", address)
	}
	raw, err := sheet.CellValue(address)
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("cell %s is empty", address)
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("cell %s is not numeric: %w", address, err)
	}
	scaled, _ := value.Mul(decimal.NewFromFloat(units)).Float64()
	return scaled, nil
}
