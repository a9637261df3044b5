package registry

import (
	"testing"
	"testing/fstest"

	"github.com/ZacBi/ai-hedge-fund/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var allNames = []string{
	AswathDamodaran,
	BenGraham,
	BillAckman,
	CathieWood,
	CharlieMunger,
	FinalReport,
	MichaelBurry,
	MohnishPabrai,
	PeterLynch,
	PhilFisher,
	PortfolioManager,
	RakeshJhunjhunwala,
	StanleyDruckenmiller,
	WarrenBuffett,
}

func TestNew_EmbeddedDefaults(t *testing.T) {
	t.Parallel()
	reg, err := New()
	require.NoError(t, err)
	assert.Equal(t, len(allNames), reg.Len())
	assert.Equal(t, allNames, reg.Names())

	for _, name := range allNames {
		tpl, err := reg.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, tpl.Name)
		assert.NotEmpty(t, tpl.Messages, name)
	}
}

func TestNew_DefaultsAreFormattable(t *testing.T) {
	t.Parallel()
	reg, err := New()
	require.NoError(t, err)

	// Every default must format cleanly given its own referenced variables,
	// including templates whose bodies carry literal JSON examples.
	for _, name := range allNames {
		tpl, err := reg.Lookup(name)
		require.NoError(t, err, name)
		vars := make(map[string]any)
		for _, v := range tpl.Vars() {
			vars[v] = "x"
		}
		_, err = tpl.Format(vars)
		assert.NoError(t, err, name)
	}
}

func TestLookup_ReturnsClone(t *testing.T) {
	t.Parallel()
	reg, err := New()
	require.NoError(t, err)

	first, err := reg.Lookup(WarrenBuffett)
	require.NoError(t, err)
	first.Messages[0].Content = "mutated"

	second, err := reg.Lookup(WarrenBuffett)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.Messages[0].Content)
}

func TestLookup_UnknownName(t *testing.T) {
	t.Parallel()
	reg, err := New()
	require.NoError(t, err)
	_, err = reg.Lookup("hedge-fund/unknown_agent")
	require.Error(t, err)
	assert.ErrorIs(t, err, prompts.ErrNotFound)
}

func TestNewFromFS_DuplicateID(t *testing.T) {
	t.Parallel()
	doc := []byte("id: a/b\nmessages:\n  - role: system\n    content: hi\n")
	fsys := fstest.MapFS{
		"defaults/one.yaml": {Data: doc},
		"defaults/two.yaml": {Data: doc},
	}
	_, err := NewFromFS(fsys, "defaults")
	require.Error(t, err)
	assert.ErrorIs(t, err, prompts.ErrInvalidManifest)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestNewFromFS_MalformedManifest(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"defaults/bad.yaml":    {Data: []byte("id: a/b\n")},
		"defaults/ignored.txt": {Data: []byte("not a manifest")},
	}
	_, err := NewFromFS(fsys, "defaults")
	require.Error(t, err)
	assert.ErrorIs(t, err, prompts.ErrInvalidManifest)
}

func TestNewFromFS_SkipsNonManifestFiles(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"defaults/one.yaml":  {Data: []byte("id: a/one\nmessages:\n  - role: system\n    content: hi\n")},
		"defaults/notes.txt": {Data: []byte("not a manifest")},
	}
	reg, err := NewFromFS(fsys, "defaults")
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}
