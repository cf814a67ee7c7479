package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TreeNode represents a node in the explorer tree. A node can be a document,
// a directory, or both at once (e.g. "works" next to "works/microbase").
type TreeNode struct {
	ID         string // Slash-joined path from the root, e.g., "works/microbase"
	Name       string // Segment, or the document filename when Document is set
	Path       string
	Document   *Document
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode

	index map[string]*TreeNode
}

// IsDir reports whether the node has children
func (n *TreeNode) IsDir() bool {
	return len(n.Children) > 0
}

// IsDocument reports whether the node opens a document
func (n *TreeNode) IsDocument() bool {
	return n.Document != nil
}

// Flatten returns all visible nodes in display order (for list rendering)
func Flatten(nodes []*TreeNode) []*TreeNode {
	var result []*TreeNode
	for _, n := range nodes {
		n.flattenRecursive(&result)
	}
	return result
}

// Flatten returns this node and its visible descendants
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree (top-level nodes are 0)
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}

// FindNode walks the slash-separated path down from a top-level slice
func FindNode(nodes []*TreeNode, path string) *TreeNode {
	level := nodes
	var found *TreeNode
	for _, part := range strings.Split(NormalizeID(path), "/") {
		found = nil
		for _, n := range level {
			if n.segment() == part {
				found = n
				break
			}
		}
		if found == nil {
			return nil
		}
		level = found.Children
	}
	return found
}

func (n *TreeNode) segment() string {
	if i := strings.LastIndex(n.Path, "/"); i >= 0 {
		return n.Path[i+1:]
	}
	return n.Path
}

// BuildTree turns the flat store into the display-ordered explorer tree.
// It never fails; an empty store yields an empty slice.
func BuildTree(store *Store) []*TreeNode {
	root := make(map[string]*TreeNode)
	var rootOrder []*TreeNode

	for _, doc := range store.Documents() {
		parts := strings.Split(doc.ID, "/")
		level := root
		var parent *TreeNode
		currentPath := ""

		for i, part := range parts {
			if currentPath == "" {
				currentPath = part
			} else {
				currentPath = currentPath + "/" + part
			}

			node, ok := level[part]
			if !ok {
				node = &TreeNode{
					ID:         currentPath,
					Name:       part,
					Path:       currentPath,
					IsExpanded: true,
					Parent:     parent,
					index:      make(map[string]*TreeNode),
				}
				level[part] = node
				if parent == nil {
					rootOrder = append(rootOrder, node)
				} else {
					parent.Children = append(parent.Children, node)
				}
			}

			// Attach without touching children created by longer IDs
			if i == len(parts)-1 {
				d := doc
				node.Document = &d
				node.Name = doc.Filename
			}

			parent = node
			level = node.index
		}
	}

	sorter := newNodeSorter()
	sorter.sortRecursive(rootOrder)
	return rootOrder
}

type nodeSorter struct {
	collator *collate.Collator
}

func newNodeSorter() *nodeSorter {
	return &nodeSorter{collator: collate.New(language.English)}
}

func (s *nodeSorter) sortRecursive(nodes []*TreeNode) {
	slices.SortStableFunc(nodes, s.compare)
	for _, n := range nodes {
		s.sortRecursive(n.Children)
	}
}

// compare orders the profile first, then directories, then names
func (s *nodeSorter) compare(a, b *TreeNode) int {
	if a.ID == ProfileID && b.ID != ProfileID {
		return -1
	}
	if b.ID == ProfileID && a.ID != ProfileID {
		return 1
	}

	if a.IsDir() && !b.IsDir() {
		return -1
	}
	if !a.IsDir() && b.IsDir() {
		return 1
	}

	if c := s.collator.CompareString(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
