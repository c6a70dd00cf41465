package model

// Package model defines domain data structures used across the shell: bundle
// entries, bootstrap phases, the observable shell state, and browser view
// event payloads. Structures are designed for explicit state transitions.
