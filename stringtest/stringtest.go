// Package stringtest builds expected multi-line text for tests.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
//
//	want := stringtest.JoinLF("line1", "line2") // -> "line1\nline2"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}

// LinesLF terminates every string with LF, matching a file where each row
// ends with a newline.
//
//	want := stringtest.LinesLF("$ ", " $") // -> "$ \n $\n"
func LinesLF(ss ...string) string {
	return terminate(ss, "\n")
}

// LinesCRLF terminates every string with CRLF.
func LinesCRLF(ss ...string) string {
	return terminate(ss, "\r\n")
}

func terminate(ss []string, eol string) string {
	var sb strings.Builder
	for _, s := range ss {
		sb.WriteString(s)
		sb.WriteString(eol)
	}

	return sb.String()
}
