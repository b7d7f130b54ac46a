package main

import (
	"errors"
	"fmt"

	"github.com/aerissecure/dashsync"
)

// describe turns a failed run into the message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, dashsync.ErrNotFound):
		return fmt.Sprintf("Error: input file is missing (%v)", err)

	case errors.Is(err, dashsync.ErrLoad):
		return fmt.Sprintf("Error: unable to read the spreadsheet (%v)", err)

	case errors.Is(err, dashsync.ErrProcessing):
		return fmt.Sprintf("Error: unable to convert the spreadsheet to CSV (%v)", err)

	case errors.Is(err, dashsync.ErrReadHTML):
		return fmt.Sprintf("Error: unable to read the HTML file (%v)", err)

	case errors.Is(err, dashsync.ErrPlaceholderNotFound):
		return fmt.Sprintf("Error: no data block found in the HTML (%v)\n"+
			"Make sure the dashboard contains a const rawData = `...`; block", err)

	case errors.Is(err, dashsync.ErrUnsafePayload):
		return fmt.Sprintf("Error: the spreadsheet contains text that cannot be embedded (%v)\n"+
			"Remove backticks from the cells", err)

	case errors.Is(err, dashsync.ErrWrite):
		return fmt.Sprintf("Error: unable to write the HTML file (%v)", err)

	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
