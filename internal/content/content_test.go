package content

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/musantuli/portfolio/internal/filter"
	"github.com/musantuli/portfolio/internal/schemas"
	"github.com/musantuli/portfolio/internal/types"
	contentschema "github.com/musantuli/portfolio/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, "Musa Ntuli", p.Name)
	assert.Equal(t, "Musa-Ntuli012", p.GitHub.Username)
	assert.Equal(t, []string{"ServeSA", "PulseCare", "Stock-Management-Site"}, p.GitHub.FeaturedRepos)
	assert.Nil(t, p.Social.Twitter)
	require.NotNil(t, p.Social.GitHub)
	assert.Equal(t, "https://github.com/Musa-Ntuli012", *p.Social.GitHub)
	assert.Equal(t, DefaultCVURL, p.CVURL)

	require.Len(t, p.Certificates, 1)
	assert.Equal(t, "CERT-2024-001", p.Certificates[0].CredentialID)
	assert.Equal(t, types.CategoryProgramming, p.Certificates[0].Category)

	require.Len(t, p.Skills, 4)
	assert.Equal(t, "Frontend", p.Skills[0].Name)
	assert.Len(t, p.Timeline, 4)
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Certificates[0].Title = "changed"
	a.GitHub.FeaturedRepos[0] = "changed"

	b := Default()
	assert.Equal(t, "Current Certification", b.Certificates[0].Title)
	assert.Equal(t, "ServeSA", b.GitHub.FeaturedRepos[0])
}

func TestDefault_MatchesSchema(t *testing.T) {
	doc, err := json.Marshal(Default())
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONBytes(contentschema.Content, doc))
}

func TestLoad_JSONRoundTripOfDefault(t *testing.T) {
	doc, err := json.MarshalIndent(Default(), "", "  ")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoad_YAML(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "content.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "janedoe", p.GitHub.Username)
	assert.Equal(t, "svc_123", p.EmailJS.ServiceID)
	assert.Nil(t, p.Social.LinkedIn)
	require.Len(t, p.Certificates, 1)
	assert.Equal(t, types.CategoryDevOps, p.Certificates[0].Category)
	assert.Equal(t, "2024-03-01", p.Certificates[0].Date)
	// Missing CV URL falls back to the default document.
	assert.Equal(t, DefaultCVURL, p.CVURL)
}

func TestLoad_YAMLUnquotedDate(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "content.yaml"))
	require.NoError(t, err)
	unquoted := strings.Replace(string(data), `date: "2024-03-01"`, "date: 2024-03-01", 1)
	require.NotEqual(t, string(data), unquoted)

	path := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(path, []byte(unquoted), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	require.Len(t, p.Certificates, 1)
	assert.Equal(t, "2024-03-01", p.Certificates[0].Date)
}

func TestLoad_SchemaViolation(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad_category.json"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	var valErr *schemas.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		message string
	}{
		{name: "unsupported extension", file: "content.toml", content: "name = 'x'", message: "unsupported extension"},
		{name: "invalid yaml", file: "content.yaml", content: "name: [unclosed", message: "failed to parse YAML"},
		{name: "missing required", file: "content.json", content: `{"name": "x"}`, message: "does not match content schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLookupTables(t *testing.T) {
	assert.Equal(t, "#00add8", LanguageColor("Go"))
	assert.Equal(t, "#f7df1e", LanguageColor("JavaScript"))
	assert.Equal(t, DefaultLanguageColor, LanguageColor("COBOL"))
	assert.Equal(t, DefaultLanguageColor, LanguageColor(""))

	assert.Equal(t, "from-orange-500 to-red-500", CategoryColor(types.CategoryCloud))
	assert.Equal(t, DefaultCategoryColor, CategoryColor("Astrology"))

	assert.Equal(t, "cloud", CategoryIcon(types.CategoryCloud))
	assert.Equal(t, DefaultCategoryIcon, CategoryIcon("Astrology"))

	assert.Equal(t, "code", SkillIcon("Frontend"))
	assert.Equal(t, DefaultSkillIcon, SkillIcon("Cooking"))
}

func TestCertificateCategories(t *testing.T) {
	tabs := CertificateCategories()

	require.Len(t, tabs, 5)
	assert.Equal(t, filter.All, tabs[0].Value)
	assert.Equal(t, "All", tabs[0].Label)
	for _, tab := range tabs {
		assert.True(t, IsCategory(tab.Value), tab.Value)
	}
	assert.False(t, IsCategory("cloud"))
}
