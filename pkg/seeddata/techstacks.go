package seeddata

// SeedTechStack is one implementation-technology label.
type SeedTechStack struct {
	Slug string
	Name string
}

var TechStacks = []SeedTechStack{
	{"golang", "Go"},
	{"rust", "Rust"},
	{"typescript", "TypeScript"},
	{"javascript", "JavaScript"},
	{"python", "Python"},
	{"ruby", "Ruby"},
	{"php", "PHP"},
	{"java", "Java"},
	{"kotlin", "Kotlin"},
	{"swift", "Swift"},
	{"elixir", "Elixir"},
	{"csharp", "C#"},
	{"cpp", "C++"},
	{"react", "React"},
	{"vue", "Vue"},
	{"svelte", "Svelte"},
	{"postgresql", "PostgreSQL"},
	{"mysql", "MySQL"},
	{"sqlite", "SQLite"},
	{"mongodb", "MongoDB"},
	{"redis", "Redis"},
	{"docker", "Docker"},
	{"kubernetes", "Kubernetes"},
}
