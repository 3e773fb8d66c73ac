package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
questions:
  - prompt: "What color is the sky?"
    options:
      A: "Blue"
      B: "Green"
    answer: A
    explanation: "Rayleigh scattering."
  - prompt: "How many legs does a spider have?"
    options:
      A: "Six"
      B: "Eight"
      C: "Ten"
    answer: B
`

func TestParse(t *testing.T) {
	bank, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, 2, bank.Len())

	questions := bank.Questions()
	assert.Equal(t, "What color is the sky?", questions[0].Prompt)
	assert.Equal(t, "A", questions[0].CorrectKey)
	assert.Equal(t, "Rayleigh scattering.", questions[0].Explanation)
	assert.Equal(t, "B", questions[1].CorrectKey)
	assert.Empty(t, questions[1].Explanation)
}

func TestParse_RejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			"answer not among options",
			`
questions:
  - prompt: "Broken"
    options:
      A: "one"
      B: "two"
    answer: Z
`,
		},
		{
			"single option",
			`
questions:
  - prompt: "Broken"
    options:
      A: "one"
    answer: A
`,
		},
		{
			"not yaml at all",
			`{{{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_EmbeddedDefault(t *testing.T) {
	bank, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10, bank.Len())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	bank, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
