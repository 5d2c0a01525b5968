// Package seeddata holds the curated records the seed commands load
// into the database: the category taxonomy, the proprietary products
// alternatives are positioned against, tech-stack labels, and an
// initial batch of alternatives.
package seeddata

// SeedCategory is one taxonomy entry.
type SeedCategory struct {
	Slug string
	Name string
}

// Categories is the full taxonomy. Every slug referenced by the
// matcher's rule table appears here so rules can resolve.
var Categories = []SeedCategory{
	{"accounting", "Accounting"},
	{"ai", "AI"},
	{"analytics", "Analytics"},
	{"api-tools", "API Tools"},
	{"automation", "Automation"},
	{"backend", "Backend"},
	{"bookmarks", "Bookmarks"},
	{"business", "Business"},
	{"business-intelligence", "Business Intelligence"},
	{"ci-cd", "CI/CD"},
	{"cms", "CMS"},
	{"collaboration", "Collaboration"},
	{"communication", "Communication"},
	{"content", "Content"},
	{"creative-tools", "Creative Tools"},
	{"crm", "CRM"},
	{"customer-support", "Customer Support"},
	{"data", "Data"},
	{"database", "Database"},
	{"design", "Design"},
	{"developer-tools", "Developer Tools"},
	{"devops", "DevOps"},
	{"documentation", "Documentation"},
	{"documents", "Documents"},
	{"e-commerce", "E-Commerce"},
	{"education", "Education"},
	{"email", "Email"},
	{"entertainment", "Entertainment"},
	{"file-sharing", "File Sharing"},
	{"file-storage", "File Storage"},
	{"finance", "Finance"},
	{"fitness", "Fitness"},
	{"forms", "Forms"},
	{"health", "Health"},
	{"home-automation", "Home Automation"},
	{"identity", "Identity"},
	{"image-editing", "Image Editing"},
	{"infrastructure", "Infrastructure"},
	{"integrations", "Integrations"},
	{"issue-tracking", "Issue Tracking"},
	{"knowledge-management", "Knowledge Management"},
	{"learning", "Learning"},
	{"legal", "Legal"},
	{"lifestyle", "Lifestyle"},
	{"marketing", "Marketing"},
	{"media", "Media"},
	{"monitoring", "Monitoring"},
	{"music", "Music"},
	{"networking", "Networking"},
	{"news", "News"},
	{"no-code", "No-Code"},
	{"note-taking", "Note-Taking"},
	{"open-source", "Open Source"},
	{"password-management", "Password Management"},
	{"payments", "Payments"},
	{"personal-finance", "Personal Finance"},
	{"photos", "Photos"},
	{"privacy", "Privacy"},
	{"productivity", "Productivity"},
	{"project-management", "Project Management"},
	{"prototyping", "Prototyping"},
	{"sales", "Sales"},
	{"scheduling", "Scheduling"},
	{"security", "Security"},
	{"self-hosted", "Self-Hosted"},
	{"social-media", "Social Media"},
	{"spreadsheets", "Spreadsheets"},
	{"streaming", "Streaming"},
	{"task-management", "Task Management"},
	{"team-chat", "Team Chat"},
	{"testing", "Testing"},
	{"version-control", "Version Control"},
	{"video", "Video"},
	{"video-conferencing", "Video Conferencing"},
	{"website-builder", "Website Builder"},
}
