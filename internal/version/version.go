// internal/version/version.go
package version

// Version is overridable at build time with
// -ldflags "-X seqr/internal/version.Version=...".
var Version = "0.1.0"
