package platform

// Package platform contains OS/platform integration: platform detection,
// resolution of the writable document directory and the application bundle
// directory, and filesystem helpers.
