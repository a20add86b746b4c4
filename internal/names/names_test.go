package names

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault_AllKindsGenerate(t *testing.T) {
	g, err := LoadDefault()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for _, kind := range []string{KindCapital, KindTown, KindFort, KindRuin} {
		name, err := g.Generate(kind, rng)
		require.NoError(t, err)
		assert.NotEmpty(t, name)
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	g, err := LoadDefault()
	require.NoError(t, err)

	_, err = g.Generate("castle", rand.New(rand.NewSource(1)))
	assert.ErrorContains(t, err, "unknown name kind")
}

func TestGenerate_DeterministicPerStream(t *testing.T) {
	g, err := LoadDefault()
	require.NoError(t, err)

	draw := func() []string {
		rng := rand.New(rand.NewSource(42))
		out := make([]string, 0, 8)
		for i := 0; i < 8; i++ {
			name, err := g.Generate(KindTown, rng)
			require.NoError(t, err)
			out = append(out, name)
		}
		return out
	}

	assert.Equal(t, draw(), draw())
}

func TestLoad_FromFile(t *testing.T) {
	data := `{
		"capital": {"prefixes": ["Kor"], "suffixes": ["hold"]},
		"town":    {"prefixes": ["Ast"], "suffixes": ["ford"]},
		"fort":    {"prefixes": ["Dun"], "suffixes": ["gate"]},
		"ruin":    {"prefixes": ["Fallen "], "suffixes": ["Spire"]}
	}`
	path := filepath.Join(t.TempDir(), "names.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	g, err := Load(path)
	require.NoError(t, err)

	name, err := g.Generate(KindRuin, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, "Fallen Spire", name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParse_Validation(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			name: "missing kind",
			data: `{"capital": {"prefixes": ["a"], "suffixes": ["b"]}}`,
			want: "missing kind",
		},
		{
			name: "empty syllables",
			data: `{
				"capital": {"prefixes": [], "suffixes": ["b"]},
				"town":    {"prefixes": ["a"], "suffixes": ["b"]},
				"fort":    {"prefixes": ["a"], "suffixes": ["b"]},
				"ruin":    {"prefixes": ["a"], "suffixes": ["b"]}
			}`,
			want: "empty syllable lists",
		},
		{
			name: "not json",
			data: `{{`,
			want: "parse name data",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse([]byte(tc.data))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
