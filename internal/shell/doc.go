package shell

// Package shell implements the bootstrap sequence of a mounted shell view:
// prepare the bundle, set readiness, start the local server, publish the base
// URL. Every resource acquired during a mount is released when it unmounts.
