package keel

var (
	// version is set via ldflags during release builds; source builds
	// show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source.
func Version() string {
	return version
}
