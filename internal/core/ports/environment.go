package ports

// Environment defines the interface for reading the variables a build runs with.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// Load returns the variables visible to a build rooted at dir.
	Load(dir string) (map[string]string, error)
}
