package application

import "devfolio/internal/domain"

// Resolve finds a document by identifier or returns a ResolutionError
func Resolve(store *domain.Store, requested string) (domain.Document, error) {
	doc, ok := store.Resolve(requested)
	if !ok {
		return domain.Document{}, &ResolutionError{Requested: requested}
	}
	return doc, nil
}
