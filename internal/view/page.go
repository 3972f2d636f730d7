package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/musantuli/portfolio/internal/content"
	"github.com/musantuli/portfolio/internal/filter"
	"github.com/musantuli/portfolio/internal/projects"
	"github.com/musantuli/portfolio/internal/theme"
	"github.com/musantuli/portfolio/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// MaxCardTopics is the number of topics shown on a project card.
const MaxCardTopics = 3

var pageTemplate = template.Must(
	template.New("page").Funcs(template.FuncMap{
		"formatDate": FormatDate,
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// ProjectCard is a repository prepared for display.
type ProjectCard struct {
	Name          string
	Description   string
	Language      string
	LanguageColor string
	Stars         int
	Forks         int
	URL           string
	Topics        []string
	Updated       string
	Featured      bool
}

// CertificateCard is a certificate prepared for display.
type CertificateCard struct {
	types.Certificate
	DisplayDate string
	Color       string
	Icon        string
}

// TabLink is one entry of the certificate filter bar.
type TabLink struct {
	filter.Tab
	Href   string
	Active bool
}

// SkillCard is a skill group prepared for display.
type SkillCard struct {
	Name   string
	Icon   string
	Skills []string
}

// Page is everything the page template renders.
type Page struct {
	Profile      types.Profile
	Theme        theme.Theme
	Sections     []Section
	Skills       []SkillCard
	Projects     []ProjectCard
	Fallback     bool
	Advisory     string
	Category     string
	Tabs         []TabLink
	Certificates []CertificateCard
	Notification *types.Notification
	Year         int
}

// PageInput collects the state a page is built from.
type PageInput struct {
	Profile      *types.Profile
	Projects     projects.Result
	Theme        theme.Theme
	Category     string
	Notification *types.Notification
	Now          time.Time
}

// BuildPage prepares the page model. An unknown category shows every
// certificate.
func BuildPage(in PageInput) Page {
	tabs := content.CertificateCategories()
	idx := filter.TabIndex(tabs, in.Category)
	active := tabs[idx].Value

	p := Page{
		Profile:      in.Profile.Public(),
		Theme:        in.Theme,
		Sections:     Sections(),
		Fallback:     in.Projects.Fallback,
		Advisory:     in.Projects.Advisory,
		Category:     active,
		Notification: in.Notification,
		Year:         in.Now.Year(),
	}

	for _, g := range in.Profile.Skills {
		p.Skills = append(p.Skills, SkillCard{Name: g.Name, Icon: content.SkillIcon(g.Name), Skills: g.Skills})
	}

	for _, repo := range in.Projects.Projects {
		p.Projects = append(p.Projects, ProjectCard{
			Name:          repo.Name,
			Description:   repo.DescriptionOr("No description available"),
			Language:      repo.LanguageOr(""),
			LanguageColor: content.LanguageColor(repo.LanguageOr("")),
			Stars:         repo.StargazersCount,
			Forks:         repo.ForksCount,
			URL:           repo.HTMLURL,
			Topics:        TopTopics(repo.Topics, MaxCardTopics),
			Updated:       FormatDate(repo.UpdatedAt, false),
			Featured:      in.Projects.IsFeatured(repo.Name),
		})
	}

	for i, tab := range tabs {
		p.Tabs = append(p.Tabs, TabLink{
			Tab:    tab,
			Href:   CategoryHref(tab.Value),
			Active: i == idx,
		})
	}

	for _, c := range filter.ByTab(in.Profile.Certificates, tabs, idx, types.CertificateCategory) {
		p.Certificates = append(p.Certificates, CertificateCard{
			Certificate: c,
			DisplayDate: FormatDate(c.Date, true),
			Color:       content.CategoryColor(c.Category),
			Icon:        content.CategoryIcon(c.Category),
		})
	}

	return p
}

// CategoryHref links to the page filtered by category.
func CategoryHref(category string) string {
	if category == filter.All {
		return "/#certificates"
	}
	return fmt.Sprintf("/?category=%s#certificates", url.QueryEscape(category))
}

// Render writes the full HTML page.
func Render(w io.Writer, p Page) error {
	return pageTemplate.ExecuteTemplate(w, "page", p)
}
