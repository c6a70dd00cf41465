package ui

// Package ui contains the Fyne-based shell view. It renders a loading
// indicator until the local server publishes its base URL and then shows the
// browser view pointed at that URL. All UI strings are localized via
// Localization.
