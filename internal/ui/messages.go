package ui

import (
	"fmt"
	"io"
)

// Static texts shown in place of the list.
const (
	LoadingText = "Loading..."
	NoDataText  = "Data was undefined :("
	ErrorPrefix = "An error has occurred: "
)

func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render(t.SymDone+" "+msg))
}

func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render(t.SymOpen+" "+msg))
}
