package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/patterns/internal/core"
)

// PrintList prints title followed by items, or empty when there are none.
func PrintList(con core.Console, title, empty string, items []string) {
	if len(items) == 0 {
		con.Println(empty)
		return
	}
	con.Println(title)
	for _, item := range items {
		con.Println(item)
	}
}

// Menu renders "Enter command (A, B, Exit): ".
func Menu(label string, names ...string) string {
	return fmt.Sprintf("%s (%s): ", label, strings.Join(names, ", "))
}
