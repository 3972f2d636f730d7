package types

// Profile is the static content record describing the portfolio owner.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`

	Social  Social       `json:"social"`
	GitHub  GitHubConfig `json:"github"`
	EmailJS EmailJS      `json:"emailjs"`

	Summary      string          `json:"summary"`
	Skills       []SkillGroup    `json:"skills"`
	Timeline     []TimelineEntry `json:"timeline"`
	Certificates []Certificate   `json:"certificates"`
	SEO          SEO             `json:"seo"`
	Quote        Quote           `json:"quote"`
	CVURL        string          `json:"cv_url"`
}

// Social holds links to social profiles. A nil link means no account.
type Social struct {
	GitHub   *string `json:"github"`
	LinkedIn *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
}

// GitHubConfig identifies the listing owner and the repositories to highlight.
type GitHubConfig struct {
	Username      string   `json:"username"`
	FeaturedRepos []string `json:"featuredRepos"`
}

// EmailJS holds the three opaque tokens identifying the email relay.
type EmailJS struct {
	ServiceID  string `json:"serviceId"`
	TemplateID string `json:"templateId"`
	PublicKey  string `json:"publicKey"`
}

// SkillGroup is a named group of skills, e.g. "Frontend".
// Groups are kept in a slice so rendering order is stable.
type SkillGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// TimelineEntry is one step of the career timeline.
type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// SEO holds page metadata.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Author      string `json:"author"`
	URL         string `json:"url"`
	Image       string `json:"image"`
}

// Quote is the favourite quote shown in the about section.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Certificate returns the certificate with the given id, or nil.
func (p *Profile) Certificate(id int) *Certificate {
	for i := range p.Certificates {
		if p.Certificates[i].ID == id {
			return &p.Certificates[i]
		}
	}
	return nil
}

// Public returns a copy of the profile without the relay tokens,
// suitable for API responses.
func (p *Profile) Public() Profile {
	out := *p
	out.EmailJS = EmailJS{}
	return out
}
