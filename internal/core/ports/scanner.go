package ports

// SourceScanner defines the interface for discovering source files.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type SourceScanner interface {
	// Discover lists the files directly inside dir whose name ends with ext.
	// The order of the result is the order the filesystem reports.
	Discover(dir, ext string) ([]string, error)
}
