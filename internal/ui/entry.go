package ui

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/PolarWolf314/titan/internal/store"
)

const (
	separator      = "====================================================================="
	maskedPassword = "**********"
)

// RenderEntry writes a single entry block to w.
func RenderEntry(w io.Writer, e store.Entry, showPassword bool) {
	password := maskedPassword
	if showPassword {
		password = e.Password
	}

	var b strings.Builder
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "ID: %d\n", e.ID)
	fmt.Fprintf(&b, "Title: %s\n", e.Title)
	fmt.Fprintf(&b, "User:  %s\n", e.User)
	fmt.Fprintf(&b, "Url:   %s\n", e.URL)
	fmt.Fprintf(&b, "Notes: %s\n", e.Notes)
	fmt.Fprintf(&b, "Password: %s\n", password)
	if !e.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Modified: %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	b.WriteString(separator + "\n")

	_, _ = io.WriteString(w, b.String())
}

// RenderEntries writes every entry yielded by seq and returns how many were
// written. It stops at the first iteration error.
func RenderEntries(w io.Writer, seq iter.Seq2[store.Entry, error], showPassword bool) (int, error) {
	count := 0
	for e, err := range seq {
		if err != nil {
			return count, err
		}
		RenderEntry(w, e, showPassword)
		count++
	}
	return count, nil
}
