package dashsync

import (
	"errors"

	"github.com/aerissecure/dashsync/dashboard"
)

// Every error returned by Sync wraps exactly one of these.
var (
	// ErrNotFound indicates the spreadsheet or the HTML file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrLoad indicates the spreadsheet exists but could not be read as a workbook.
	ErrLoad = errors.New("failed to read spreadsheet")

	// ErrProcessing indicates the loaded table could not be normalized or serialized.
	ErrProcessing = errors.New("failed to process spreadsheet")

	// ErrReadHTML indicates the HTML file exists but could not be read.
	ErrReadHTML = errors.New("failed to read HTML")

	// ErrPlaceholderNotFound indicates the HTML has no embedded data block.
	ErrPlaceholderNotFound = dashboard.ErrPlaceholderNotFound

	// ErrUnsafePayload indicates the CSV contains a backtick.
	ErrUnsafePayload = dashboard.ErrUnsafePayload

	// ErrWrite indicates the patched HTML could not be saved.
	ErrWrite = errors.New("failed to write HTML")
)
