package server

// Package server runs the local static file server that exposes the web
// bundle to the browser view. A Server is created unstarted, started at most
// once, and stopped exactly once; Stop is safe at any point of that lifecycle.
