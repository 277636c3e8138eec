package voidtrade

// Version and Build are set by build flags.
var (
	Version = "v0.1.0"
	Build   = "n/a"
)
