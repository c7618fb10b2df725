package bancogo

//go:generate mockgen -source=repository.go -destination=mocks/store.go -package=mocks

// Store persists the whole customer+account document. There are no partial
// writes: Save replaces everything the previous Save wrote.
type Store interface {
	Load() (*Document, error)
	Save(*Document) error
}
