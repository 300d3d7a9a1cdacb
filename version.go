package lyrebird

// Version is the current lyrebird release.
var Version = "0.3.0"
