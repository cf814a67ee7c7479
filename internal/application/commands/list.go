package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"devfolio/internal/application"
	"devfolio/internal/domain"
)

// ListDocumentsCommand lists the documents in the store
type ListDocumentsCommand struct {
	store  *domain.Store
	Prefix string
}

// NewListDocumentsCommand creates a new ListDocumentsCommand. An empty prefix
// lists everything; otherwise only IDs under the prefix are returned.
func NewListDocumentsCommand(store *domain.Store, prefix string) *ListDocumentsCommand {
	return &ListDocumentsCommand{
		store:  store,
		Prefix: prefix,
	}
}

// Execute runs the list command
func (c *ListDocumentsCommand) Execute(ctx context.Context) ([]domain.Document, error) {
	prefix := strings.Trim(domain.NormalizeID(c.Prefix), "/")
	var docs []domain.Document
	for _, doc := range c.store.Documents() {
		if prefix != "" && doc.ID != prefix && !strings.HasPrefix(doc.ID, prefix+"/") {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// BuildTreeCommand builds the explorer tree
type BuildTreeCommand struct {
	store *domain.Store
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(store *domain.Store) *BuildTreeCommand {
	return &BuildTreeCommand{store: store}
}

// Execute runs the build tree command
func (c *BuildTreeCommand) Execute(ctx context.Context) ([]*domain.TreeNode, error) {
	return domain.BuildTree(c.store), nil
}

// ReadDocumentCommand resolves a single document by ID or key
type ReadDocumentCommand struct {
	store *domain.Store
	ID    string
}

// NewReadDocumentCommand creates a new ReadDocumentCommand
func NewReadDocumentCommand(store *domain.Store, id string) *ReadDocumentCommand {
	return &ReadDocumentCommand{
		store: store,
		ID:    id,
	}
}

// Validate checks the requested identifier
func (c *ReadDocumentCommand) Validate() error {
	return application.ValidateDocumentID("documentID", c.ID)
}

// Execute runs the read command
func (c *ReadDocumentCommand) Execute(ctx context.Context) (domain.Document, error) {
	if err := c.Validate(); err != nil {
		return domain.Document{}, err
	}
	return application.Resolve(c.store, c.ID)
}

// WriteTree prints the tree one node per line, indented by depth. Nodes that
// hold a document show its ID next to the name.
func WriteTree(w io.Writer, nodes []*domain.TreeNode) error {
	for _, n := range nodes {
		line := strings.Repeat("  ", n.Depth()) + n.Name
		if n.IsDocument() {
			line += "  (" + domain.KeyFor(n.Document.ID) + ")"
		} else if n.IsDir() {
			line += "/"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := WriteTree(w, n.Children); err != nil {
			return err
		}
	}
	return nil
}
