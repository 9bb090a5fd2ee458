package ports

// Hasher defines the interface for computing artifact checksums.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFile computes the hex-encoded content hash of the file at path.
	HashFile(path string) (string, error)
}
