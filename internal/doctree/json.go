package doctree

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON reads a serialized document tree and links parent pointers.
// The build pipeline hands trees across the process boundary as JSON
// objects of the form {"kind": ..., "attributes": ..., "rawsource": ...,
// "children": [...]}.
func DecodeJSON(r io.Reader) (*Node, error) {
	var root Node
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("doctree: decode: %w", err)
	}
	linkParents(&root)
	return &root, nil
}

// UnmarshalJSON decodes a serialized document tree from a byte slice.
func UnmarshalJSON(data []byte) (*Node, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("doctree: decode: %w", err)
	}
	linkParents(&root)
	return &root, nil
}

func linkParents(n *Node) {
	for _, c := range n.Children {
		c.parent = n
		linkParents(c)
	}
}
