package internal

// Version of hanyu, set at release time
var Version = "0.3.0"
