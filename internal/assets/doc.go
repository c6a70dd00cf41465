package assets

// Package assets makes the bundled web application available to the local
// server. A Materializer copies the bundle tree into writable storage; a
// Strategy decides, per platform, whether copying is needed at all and where
// the document root lives.
