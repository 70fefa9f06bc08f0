//go:build ndebug

package keelnum

// DebugFatal is Error under the ndebug build tag. See debugfatal.go.
const DebugFatal = Error
