package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
)

// testCatalog is a small storefront export: one well-matched futon and
// one with no matching tags.
const testCatalog = `{
  "products": [
    {
      "id": 1001,
      "title": "Cloud Nine Futon",
      "vendor": "Nordfuton",
      "price": 349900,
      "tags": ["medium", "side", "quality"],
      "variants": [{"id": 2001, "available": true, "price": 349900}]
    },
    {
      "id": 1002,
      "title": "Plain Futon",
      "price": 149900,
      "tags": []
    }
  ]
}`

// writeTestCatalog puts the fixture catalog in a temp dir and returns
// its path.
func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	return path
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetRecommendFlags()
	}()
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetRecommendFlags restores flag globals between executions.
func resetRecommendFlags() {
	flagConfig = ""
	flagCatalog = ""
	flagMappings = ""
	recommendAnswers = ""
	recommendPeople = 1
	recommendWeights = nil
	recommendPositions = nil
	recommendPreferences = nil
	recommendTop = 0
	recommendJSON = false
	recommendExplain = false
	recommendZero = false
}

func TestRecommendCmd_Use(t *testing.T) {
	assert.Equal(t, "recommend", recommendCmd.Use)
}

func TestRecommendCmd_HasTopFlag(t *testing.T) {
	flag := recommendCmd.Flags().Lookup("top")
	require.NotNil(t, flag, "top flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
}

// TestRecommendCmd_RanksMatchingProductFirst verifies the end-to-end
// flag path: catalog load, scoring, table output.
func TestRecommendCmd_RanksMatchingProductFirst(t *testing.T) {
	catalog := writeTestCatalog(t)

	out, err := execute(t, "recommend",
		"--config", t.TempDir(),
		"--catalog", catalog,
		"--weight", "65",
		"--position", "side",
		"--preference", "medium",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "[1] Cloud Nine Futon")
	assert.Contains(t, out, "[2] Plain Futon")
}

// TestRecommendCmd_JSONOutput verifies --json emits decodable results.
func TestRecommendCmd_JSONOutput(t *testing.T) {
	catalog := writeTestCatalog(t)

	out, err := execute(t, "recommend",
		"--config", t.TempDir(),
		"--catalog", catalog,
		"--weight", "65",
		"--position", "side",
		"--preference", "medium",
		"--json",
	)

	require.NoError(t, err)
	var results []domain.ScoredProduct
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Cloud Nine Futon", results[0].Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}

// TestRecommendCmd_AnswersFile verifies loading answers from JSON.
func TestRecommendCmd_AnswersFile(t *testing.T) {
	catalog := writeTestCatalog(t)
	answers := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(answers, []byte(`{
		"people_count": 2,
		"weights": {"person1": 75, "person2": 80},
		"sleep_positions": {"person1": "side", "person2": "back"},
		"preferences": {"person1": "medium", "person2": "medium"}
	}`), 0o644))

	out, err := execute(t, "recommend",
		"--config", t.TempDir(),
		"--catalog", catalog,
		"--answers", answers,
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Cloud Nine Futon")
}

// TestRecommendCmd_InvalidPosition verifies flag validation.
func TestRecommendCmd_InvalidPosition(t *testing.T) {
	catalog := writeTestCatalog(t)

	_, err := execute(t, "recommend",
		"--config", t.TempDir(),
		"--catalog", catalog,
		"--weight", "65",
		"--position", "upside-down",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestRecommendCmd_MissingCatalog verifies the configuration error.
func TestRecommendCmd_MissingCatalog(t *testing.T) {
	_, err := execute(t, "recommend",
		"--config", t.TempDir(),
		"--weight", "65",
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog configured")
}

// TestRecommendCmd_TopLimits verifies --top truncates the list.
func TestRecommendCmd_TopLimits(t *testing.T) {
	catalog := writeTestCatalog(t)

	out, err := execute(t, "recommend",
		"--config", t.TempDir(),
		"--catalog", catalog,
		"--weight", "65",
		"--position", "side",
		"--preference", "medium",
		"--top", "1",
		"--json",
	)

	require.NoError(t, err)
	var results []domain.ScoredProduct
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, 1)
}
