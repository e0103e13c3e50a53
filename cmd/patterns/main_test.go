package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	logCfg := filepath.Join(home, "logging.yaml")
	require.NoError(t, os.WriteFile(logCfg, []byte("output: discard\n"), 0o644))
	t.Setenv("PATTERNS_LOG_CONFIG", logCfg)
	return home
}

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestDemos_EndToEnd(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		demo         string
		script       string
		wantContains []string
	}{
		{
			demo:         "webpage",
			script:       "DarkMode\nBorder\ndone\n",
			wantContains: []string{"Final Web Page Content: Basic Web Page with Dark Mode Styling with Border Styling"},
		},
		{
			demo:         "furniture",
			script:       "Add\nChair\nOak\nDisplayAll\nExit\n",
			wantContains: []string{"Designing a chair.", "Type: Chair, Material: Oak", "Exiting..."},
		},
		{
			demo:         "meal",
			script:       "DisplayAll\nExit\n",
			wantContains: []string{"No previous meals prepared."},
		},
		{
			demo:         "travel",
			script:       "Book\n100\n2\nBus\nExit\n",
			wantContains: []string{"Cost of traveling: $1000.00"},
		},
		{
			demo:         "vacation",
			script:       "Display\nExit\n",
			wantContains: []string{"No vacation packages to display."},
		},
		{
			demo:         "classroom",
			script:       "teacher\nadd_classroom\nMath\nno\nexit\n",
			wantContains: []string{"Classroom Math has been created."},
		},
		{
			demo:         "orgchart",
			script:       "5\n",
			wantContains: []string{"Organizational Chart:", "Group: Company"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.demo, func(t *testing.T) {
			out := execute(t, tt.script, tt.demo)
			for _, s := range tt.wantContains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestDemos_EndOfInput(t *testing.T) {
	setupEnv(t)
	out := execute(t, "Add\n", "furniture")
	assert.NotContains(t, out, "An unexpected error occurred.")
}

func TestRoot_HelpWithoutTerminal(t *testing.T) {
	setupEnv(t)
	out := execute(t, "")

	assert.Contains(t, out, "USAGE")
	for _, d := range demos {
		assert.Contains(t, out, d.name)
	}
	assert.Contains(t, out, "config")
}

func TestConfigCommand(t *testing.T) {
	home := setupEnv(t)
	runtime := filepath.Join(home, ".patterns")
	require.NoError(t, os.MkdirAll(runtime, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(runtime, ".env"), []byte("PATTERNS_PLAIN=true\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PATTERNS_PLAIN") })

	out := execute(t, "", "config")

	assert.Contains(t, out, "PATTERNS_RUNTIME_PATH=.patterns\n")
	assert.Contains(t, out, "PATTERNS_PLAIN=true\n")
	assert.Contains(t, out, "PATTERNS_DEBUG=false\n")
}

func TestFindDemo(t *testing.T) {
	d, ok := findDemo("travel")
	require.True(t, ok)
	assert.Equal(t, "travel", d.name)

	_, ok = findDemo("observer")
	assert.False(t, ok)
	assert.Len(t, demoChoices(), len(demos))
}
