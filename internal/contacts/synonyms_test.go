package contacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_CanonicalLabelFirst(t *testing.T) {
	t.Parallel()

	e := NewSynonymExpander()

	got := e.Expand("CTO")
	require.NotEmpty(t, got)
	assert.Equal(t, "CTO", got[0])
	assert.Equal(t, []string{
		"CTO", "Chief Technology Officer", "VP Engineering",
		"Vice President Engineering", "Head of Engineering",
	}, got)
}

func TestExpand_UnknownRoleIsLiteral(t *testing.T) {
	t.Parallel()

	e := NewSynonymExpander()
	assert.Equal(t, []string{"Head of Quantitative Research"}, e.Expand("Head of Quantitative Research"))
}

func TestMerge_OverridesRole(t *testing.T) {
	t.Parallel()

	e := NewSynonymExpander()
	e.Merge(map[string][]string{"CTO": {"Tech Lead"}})

	assert.Equal(t, []string{"CTO", "Tech Lead"}, e.Expand("CTO"))
	// Untouched roles keep their defaults.
	assert.Contains(t, e.Expand("CEO"), "Managing Director")
}

func TestLoadSynonyms(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"CPO:\n  - Chief Product Officer\n  - Head of Product\n"), 0o600))

	got, err := LoadSynonyms(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chief Product Officer", "Head of Product"}, got["CPO"])
}

func TestLoadSynonyms_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSynonyms(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
