package node

import (
	"github.com/ShafSpecs/mdit-go/env"
	"github.com/ShafSpecs/mdit-go/srcmap"
)

// Root is the payload of the tree's top-level node. It owns the
// document-wide environment bag (holding, among other things, the
// reference map) for the duration of one parse.
type Root struct {
	Env *env.Bag
}

func (Root) NodeValueName() string { return "root" }

// InlineRoot is a placeholder emitted by the block phase for a span of
// raw, not-yet-tokenized inline content. The inline driver replaces each
// InlineRoot node with its parsed children in place.
type InlineRoot struct {
	Content string
	Mapping srcmap.Mapping
}

func (InlineRoot) NodeValueName() string { return "inline_root" }

// Text is plain text content with no markup of its own. Consecutive
// Text nodes emitted by the tokenizer's fallback path are merged into
// one before the caller sees them.
type Text struct {
	Content string
}

func (Text) NodeValueName() string { return "text" }
