package prompt

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MatchesGolden(t *testing.T) {
	want, err := os.ReadFile("testdata/sample_prompt.golden")
	require.NoError(t, err)

	got := Build("{\n    \"best_flights\": []\n}")
	assert.Equal(t, string(want), got)
}

func TestBuild_EmbedsJSONOnce(t *testing.T) {
	data := `{"search_metadata": {"id": "abc123"}, "best_flights": [{"price": 5123}]}`

	got := Build(data)
	assert.True(t, strings.HasPrefix(got, Heading))
	assert.Equal(t, 1, strings.Count(got, data))
	assert.Contains(t, got, "Here is the flight data in JSON format:\n"+data+"\n\n")
}

func TestBuild_Sections(t *testing.T) {
	got := Build("{}")

	for _, section := range []string{
		"### 1. **Flight Overview** 📊",
		"### 2. **Detailed Flight Comparison** 🔍",
		"### 3. **Flight Data in DataFrame Format** 📝",
		"### 4. **Summary and Recommendations** 📋",
		"### 5. **Travel Hack and Tips** 🛠️✈️",
		"### 6. **Destination Suggestions** 🌎",
		"### Note:",
	} {
		assert.Contains(t, got, section)
	}
	assert.True(t, strings.HasSuffix(got, "the DataFrame should not include any code."))
}

func TestBuild_EmptyInput(t *testing.T) {
	got := Build("")

	assert.True(t, strings.HasPrefix(got, Heading))
	assert.Contains(t, got, "Here is the flight data in JSON format:\n\n\n")
}
