package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTreeScalarOverride(t *testing.T) {
	dest := map[string]interface{}{"a": 1, "b": "keep"}
	src := map[string]interface{}{"a": 2}

	mergeTree(src, dest)

	assert.Equal(t, 2, dest["a"])
	assert.Equal(t, "keep", dest["b"])
}

func TestMergeTreeListAppend(t *testing.T) {
	dest := map[string]interface{}{"words": []interface{}{"x", "y"}}
	src := map[string]interface{}{"words": []interface{}{"z"}}

	mergeTree(src, dest)

	assert.Equal(t, []interface{}{"x", "y", "z"}, dest["words"])
}

func TestMergeTreeRecursesIntoMaps(t *testing.T) {
	dest := map[string]interface{}{
		"person": map[string]interface{}{
			"minAge": 18,
			"names":  []interface{}{"ann"},
		},
	}
	src := map[string]interface{}{
		"person": map[string]interface{}{
			"minAge": 21,
			"names":  []interface{}{"bea"},
			"extra":  true,
		},
	}

	mergeTree(src, dest)

	person := dest["person"].(map[string]interface{})
	assert.Equal(t, 21, person["minAge"])
	assert.Equal(t, []interface{}{"ann", "bea"}, person["names"])
	assert.Equal(t, true, person["extra"])
}

func TestMergeTreeShapeMismatchOverlayWins(t *testing.T) {
	dest := map[string]interface{}{
		"v": []interface{}{"list"},
		"m": map[string]interface{}{"k": 1},
	}
	src := map[string]interface{}{
		"v": "scalar",
		"m": "flattened",
	}

	mergeTree(src, dest)

	assert.Equal(t, "scalar", dest["v"])
	assert.Equal(t, "flattened", dest["m"])
}

func TestMergeTreeNewKeys(t *testing.T) {
	dest := map[string]interface{}{}
	src := map[string]interface{}{
		"nested": map[string]interface{}{"k": "v"},
	}

	mergeTree(src, dest)

	assert.Equal(t, src["nested"], dest["nested"])
}
