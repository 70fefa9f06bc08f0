//go:build !ndebug

package keelnum

// DebugFatal is Fatal in default builds and Error when the ndebug build
// tag (assertions disabled) is set. The package is compiled once into any
// program, so every importer sees the same value.
const DebugFatal = Fatal
