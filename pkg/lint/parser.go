package lint

import (
	"context"

	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// Parser is the tree-builder boundary consumed by the engine. The core does
// not parse Swift itself; it requires the implementation to guarantee the
// round-trip invariant (the snapshot's token stream serializes back to
// exactly the input text) and stable node kinds.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*swast.FileSnapshot, error)
}
