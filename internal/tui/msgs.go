package tui

// reportSavedMsg reports the outcome of writing the current report to disk.
type reportSavedMsg struct {
	path string
	err  error
}

// clipboardCopiedMsg reports the outcome of a copy-to-clipboard request.
type clipboardCopiedMsg struct {
	err error
}
