package domain

import (
	"maps"
	"slices"
)

// BlockAnalysis is what block descriptors reveal about a project.
type BlockAnalysis struct {
	// ComponentBlocks maps a component type to the block names used with it.
	ComponentBlocks map[string]map[string]struct{}
	// Permissions are fully qualified permissions requested by blocks.
	Permissions map[string]struct{}
	// Scopes are storage scopes selected by blocks.
	Scopes map[string]struct{}
}

// NewBlockAnalysis returns an empty analysis ready to be merged into.
func NewBlockAnalysis() BlockAnalysis {
	return BlockAnalysis{
		ComponentBlocks: make(map[string]map[string]struct{}),
		Permissions:     make(map[string]struct{}),
		Scopes:          make(map[string]struct{}),
	}
}

// Merge adds other into a by set union.
func (a *BlockAnalysis) Merge(other BlockAnalysis) {
	if a.ComponentBlocks == nil {
		*a = NewBlockAnalysis()
	}
	for typ, blocks := range other.ComponentBlocks {
		dst, ok := a.ComponentBlocks[typ]
		if !ok {
			dst = make(map[string]struct{}, len(blocks))
			a.ComponentBlocks[typ] = dst
		}
		maps.Copy(dst, blocks)
	}
	maps.Copy(a.Permissions, other.Permissions)
	maps.Copy(a.Scopes, other.Scopes)
}

// AddBlock records that a block named block is used with component type typ.
func (a *BlockAnalysis) AddBlock(typ, block string) {
	blocks, ok := a.ComponentBlocks[typ]
	if !ok {
		blocks = make(map[string]struct{})
		a.ComponentBlocks[typ] = blocks
	}
	blocks[block] = struct{}{}
}

// SortedKeys returns the keys of a set in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
