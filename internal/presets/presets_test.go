package presets_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/ruminaider/readme-maker/internal/presets"
	"github.com/ruminaider/readme-maker/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *presets.Store {
	t.Helper()
	return presets.New(filepath.Join(t.TempDir(), "presets.json"))
}

func sampleRecord() profile.Record {
	return profile.Record{
		Name:           "Ada Lovelace",
		Title:          "Engineer",
		About:          "Analytical engines. Ünïcödé welcome.",
		Socials:        []profile.Social{{Label: "GitHub", URL: "https://github.com/ada"}},
		Tech:           []string{"Python", "C++"},
		Education:      "Home schooled",
		CPI:            "10",
		Certifications: []string{"Notes on the Engine"},
		Projects: []profile.Project{
			{Name: "Note G", Links: []string{"https://example.com/g", ""}, Tags: "algorithm", Desc: "Bernoulli numbers"},
		},
		Phone:    "555",
		Email:    "ada@example.com",
		LinkedIn: "https://linkedin.com/in/ada",
		GitHub:   "https://github.com/ada",
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	s := newStore(t)
	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestLoadAll_EmptyFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("  \n"), 0644))
	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLoadAll_NullFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("null\n"), 0644))

	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	name, err := s.Save("x", profile.New())
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, names)
}

func TestLoadAll_CorruptFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))
	_, err := s.LoadAll()
	assert.ErrorIs(t, err, presets.ErrStoreIO)
}

func TestLoadAll_UnreadablePath(t *testing.T) {
	// A directory where the file should be cannot be read as a file.
	dir := t.TempDir()
	s := presets.New(dir)
	_, err := s.LoadAll()
	assert.ErrorIs(t, err, presets.ErrStoreIO)
}

func TestLoadAll_NormalizesRecords(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"old": {"name": "", "projects": [{"name": "p"}]}}`), 0644))

	all, err := s.LoadAll()
	require.NoError(t, err)
	rec := all["old"]
	assert.Equal(t, profile.DefaultName, rec.Name)
	assert.NotNil(t, rec.Socials)
	assert.NotNil(t, rec.Tech)
	assert.NotNil(t, rec.Certifications)
	assert.NotNil(t, rec.Projects[0].Links)
}

func TestSave_RoundTrip(t *testing.T) {
	s := newStore(t)
	rec := sampleRecord()

	name, err := s.Save("mine", rec)
	require.NoError(t, err)
	assert.Equal(t, "mine", name)

	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, rec, all["mine"])
}

func TestSave_OverwritesSilently(t *testing.T) {
	s := newStore(t)
	_, err := s.Save("mine", sampleRecord())
	require.NoError(t, err)

	updated := sampleRecord()
	updated.Title = "Countess"
	_, err = s.Save("mine", updated)
	require.NoError(t, err)

	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Countess", all["mine"].Title)
}

func TestSave_KeepsOtherEntries(t *testing.T) {
	s := newStore(t)
	_, err := s.Save("a", sampleRecord())
	require.NoError(t, err)
	_, err = s.Save("b", sampleRecord())
	require.NoError(t, err)

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestSave_GeneratesName(t *testing.T) {
	s := newStore(t)
	pattern := regexp.MustCompile(`^preset-[0-9a-f]{6}$`)

	first, err := s.Save("", sampleRecord())
	require.NoError(t, err)
	second, err := s.Save("   ", sampleRecord())
	require.NoError(t, err)

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)

	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.Contains(t, all, first)
	assert.Contains(t, all, second)
}

func TestGenerateName_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := presets.GenerateName()
		assert.Regexp(t, `^preset-[0-9a-f]{6}$`, name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestDelete(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Save("gone", sampleRecord())
		require.NoError(t, err)
		_, err = s.Save("kept", sampleRecord())
		require.NoError(t, err)

		require.NoError(t, s.Delete("gone"))

		all, err := s.LoadAll()
		require.NoError(t, err)
		assert.NotContains(t, all, "gone")
		assert.Contains(t, all, "kept")
	})

	t.Run("missing name is a no-op", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Save("kept", sampleRecord())
		require.NoError(t, err)

		require.NoError(t, s.Delete("never-existed"))

		all, err := s.LoadAll()
		require.NoError(t, err)
		assert.NotContains(t, all, "never-existed")
		assert.Len(t, all, 1)
	})

	t.Run("missing file is a no-op", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Delete("anything"))
		_, err := os.Stat(s.Path())
		assert.True(t, os.IsNotExist(err))
	})
}

func TestSaveAll_HumanReadable(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SaveAll(map[string]profile.Record{"x": sampleRecord()}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"x\": {\n    \"name\": \"Ada Lovelace\"")
	assert.Contains(t, string(data), "Ünïcödé")
	assert.Contains(t, string(data), `"certifications"`)
}

func TestSaveAll_CreatesParentDir(t *testing.T) {
	s := presets.New(filepath.Join(t.TempDir(), "nested", "dir", "presets.json"))
	require.NoError(t, s.SaveAll(nil))

	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGet(t *testing.T) {
	s := newStore(t)
	_, err := s.Save("mine", sampleRecord())
	require.NoError(t, err)

	rec, ok, err := s.Get("mine")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ada Lovelace", rec.Name)

	_, ok, err = s.Get("other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Ada Lovelace (Engineer, 1 project, 2 skills)", presets.Summary(sampleRecord()))
	assert.Equal(t, "Solo", presets.Summary(profile.Record{Name: "Solo"}))
}
