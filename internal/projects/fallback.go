package projects

import "github.com/musantuli/portfolio/internal/types"

func strPtr(s string) *string { return &s }

// Fallback returns a fresh copy of the curated project list.
func Fallback() []types.Repository {
	return []types.Repository{
		{
			ID:              1,
			Name:            "ServeSA",
			Description:     strPtr("A comprehensive service management platform for South African businesses, featuring appointment booking, service tracking, and customer management."),
			Language:        strPtr("JavaScript"),
			StargazersCount: 0,
			ForksCount:      0,
			HTMLURL:         "https://github.com/XENTRIX-Portfolio/ServeSA",
			Topics:          []string{"javascript", "react", "nodejs", "mongodb", "service-management"},
			CreatedAt:       "2024-01-15T10:00:00Z",
			UpdatedAt:       "2024-01-20T15:30:00Z",
		},
		{
			ID:              2,
			Name:            "PulseCare",
			Description:     strPtr("A healthcare management system designed to streamline patient care, appointment scheduling, and medical record management."),
			Language:        strPtr("TypeScript"),
			StargazersCount: 0,
			ForksCount:      0,
			HTMLURL:         "https://github.com/XENTRIX-Portfolio/PulseCare",
			Topics:          []string{"typescript", "react", "healthcare", "patient-management", "medical-records"},
			CreatedAt:       "2023-12-01T09:00:00Z",
			UpdatedAt:       "2024-01-18T12:00:00Z",
		},
		{
			ID:              3,
			Name:            "Stock-Management-Site",
			Description:     strPtr("An inventory management solution for businesses to track stock levels, manage suppliers, and optimize inventory operations."),
			Language:        strPtr("JavaScript"),
			StargazersCount: 0,
			ForksCount:      0,
			HTMLURL:         "https://github.com/XENTRIX-Portfolio/Stock-Management-Site",
			Topics:          []string{"javascript", "inventory", "stock-management", "business-solution", "supply-chain"},
			CreatedAt:       "2023-11-20T14:00:00Z",
			UpdatedAt:       "2024-01-10T16:45:00Z",
		},
	}
}
