package types

// Certificate categories used for filtering.
const (
	CategoryAll         = "all"
	CategoryCloud       = "Cloud"
	CategoryProgramming = "Programming"
	CategoryManagement  = "Management"
	CategoryDevOps      = "DevOps"
)

// Certificate represents a professional certification shown on the portfolio.
type Certificate struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Issuer          string   `json:"issuer"`
	Date            string   `json:"date"` // YYYY-MM-DD
	Category        string   `json:"category"`
	Image           string   `json:"image,omitempty"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	CredentialID    string   `json:"credentialId"`
	VerificationURL string   `json:"verificationUrl"`
}

// CertificateCategory returns the category tag of a certificate.
// Used as the field accessor for category filtering.
func CertificateCategory(c Certificate) string {
	return c.Category
}
