package app

// Version of the runner.
// Format is YYYY.WW[.patch]
// YYYY is the 4-digit year of the release (e.g. 2023)
// WW is the 2-digit week of the year (e.g. 02, 12)
// patch is the optional patch number (in case more than one release occurs during the same week)
var Version = "0000.00"

// Commit is the git commit the binary was built from. Set with -ldflags at build time.
var Commit = "unknown"
