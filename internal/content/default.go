// Package content holds the static record describing the portfolio owner
// and the lookup tables used to present it.
package content

import "github.com/musantuli/portfolio/internal/types"

// DefaultCVURL is the externally hosted CV document.
const DefaultCVURL = "https://drive.google.com/file/d/1MMc1IPDCXtEe3CyltgUdOrK2ep-EyiN3/view?usp=sharing"

func strPtr(s string) *string { return &s }

// Default returns the built-in content record. Each call returns a new copy.
func Default() *types.Profile {
	return &types.Profile{
		Name:     "Musa Ntuli",
		Title:    "Software Developer",
		Tagline:  "Turning ideas into code that works beautifully.",
		Email:    "musantuli004@gmail.com",
		Phone:    "067 877 1359 / 071 604 0426",
		Location: "South Africa",
		Social: types.Social{
			GitHub:   strPtr("https://github.com/Musa-Ntuli012"),
			LinkedIn: strPtr("https://www.linkedin.com/in/musa-ntuli-7847a9269"),
		},
		GitHub: types.GitHubConfig{
			Username:      "Musa-Ntuli012",
			FeaturedRepos: []string{"ServeSA", "PulseCare", "Stock-Management-Site"},
		},
		EmailJS: types.EmailJS{
			ServiceID:  "your_service_id",
			TemplateID: "your_template_id",
			PublicKey:  "your_public_key",
		},
		Summary: "I'm Musa Ntuli, a passionate software developer from South Africa with expertise in building " +
			"scalable web applications and digital solutions. I specialize in modern frontend technologies like " +
			"React and JavaScript, with strong backend skills in Node.js and database management. I love turning " +
			"complex problems into simple, beautiful, and intuitive solutions.\n\n" +
			"My portfolio includes projects like ServeSA (service management platform), PulseCare (healthcare system), " +
			"and Stock-Management-Site (inventory management). I believe in continuous learning and staying up-to-date " +
			"with the latest industry trends to deliver exceptional software solutions.",
		Skills: []types.SkillGroup{
			{Name: "Frontend", Skills: []string{"React", "JavaScript", "TypeScript", "HTML5", "CSS3", "Tailwind CSS", "Next.js", "Vue.js", "Angular", "Svelte"}},
			{Name: "Backend", Skills: []string{"Node.js", "Python", "Java", "C#", "Express.js", "Django", "Spring Boot", ".NET Core", "PostgreSQL", "MongoDB"}},
			{Name: "Cloud", Skills: []string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "CI/CD", "Serverless", "Microservices"}},
			{Name: "Tools", Skills: []string{"Git", "VS Code", "IntelliJ", "Figma", "Postman", "Jest", "Cypress", "Webpack", "Vite"}},
		},
		Timeline: []types.TimelineEntry{
			{Year: "2023", Title: "Senior Software Developer", Company: "Tech Company", Description: "Leading development of scalable web applications and mentoring junior developers."},
			{Year: "2021", Title: "Software Developer", Company: "Startup Inc.", Description: "Built full-stack applications using React and Node.js, contributing to product growth."},
			{Year: "2020", Title: "Computer Science Degree", Company: "University", Description: "Graduated with honors, focusing on software engineering and web technologies."},
			{Year: "2019", Title: "Frontend Developer Intern", Company: "Digital Agency", Description: "Developed responsive websites and learned modern frontend frameworks."},
		},
		Certificates: []types.Certificate{
			{
				ID:              1,
				Title:           "Current Certification",
				Issuer:          "Professional Development",
				Date:            "2024-01-15",
				Category:        types.CategoryProgramming,
				Image:           "/certificates/current-certification.jpg",
				Description:     "Current professional certification demonstrating expertise in software development and programming.",
				Skills:          []string{"Software Development", "Programming", "Technical Skills", "Professional Development"},
				CredentialID:    "CERT-2024-001",
				VerificationURL: "https://drive.google.com/file/d/1fPrGSL9Wj8cr1iTCRwxMwtTdgDquX20y/view?usp=sharing",
			},
		},
		SEO: types.SEO{
			Title:       "Musa Ntuli - Software Developer Portfolio",
			Description: "Musa Ntuli's portfolio showcasing software development projects, skills, and achievements. Specializing in React, JavaScript, and full-stack development.",
			Keywords:    "Musa Ntuli, portfolio, software developer, react, javascript, web development, full-stack developer, South Africa",
			Author:      "Musa Ntuli",
			URL:         "https://codecanvas.dev/",
			Image:       "/og-image.jpg",
		},
		Quote: types.Quote{
			Text:   "Code is like humor. When you have to explain it, it's bad.",
			Author: "Cory House",
		},
		CVURL: DefaultCVURL,
	}
}
