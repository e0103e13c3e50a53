package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlain_ReadLine(t *testing.T) {
	var out bytes.Buffer
	con := NewPlain(strings.NewReader("first\n\nthird"), &out)

	line, err := con.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = con.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = con.ReadLine("? ")
	require.NoError(t, err)
	assert.Equal(t, "third", line)

	_, err = con.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "> ? > ", out.String())
}

func TestPlain_Print(t *testing.T) {
	var out bytes.Buffer
	con := NewPlain(strings.NewReader(""), &out)

	con.Println("Exiting...")
	con.Printf("Cost of traveling: $%s\n", "1000.00")

	assert.Equal(t, "Exiting...\nCost of traveling: $1000.00\n", out.String())
	assert.NoError(t, con.Close())
}

func TestPlain_LongLinesAndLineEndings(t *testing.T) {
	long := strings.Repeat("z", 200*1024)
	con := NewPlain(strings.NewReader(long+"\nAdd\r\nExit"), io.Discard)

	for _, want := range []string{long, "Add", "Exit"} {
		line, err := con.ReadLine("")
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := con.ReadLine("")
	assert.ErrorIs(t, err, io.EOF)
}
