package judge0

import (
	"sort"
	"strconv"
)

type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// The editor mode the web runner uses for this language.
	Editor string `json:"editor"`
	// Extension given to downloaded source files.
	Extension string `json:"extension"`
}

// Languages are the judge0 language ids offered by the code runner. The
// table is informational, ids missing from it are still forwarded and
// judge0 decides whether they are supported.
var Languages = map[int]Language{
	71: {ID: 71, Name: "Python (3.12.0)", Editor: "python", Extension: "py"},
	92: {ID: 92, Name: "Python for ML (3.8.1)", Editor: "python", Extension: "py"},
	63: {ID: 63, Name: "JavaScript (Node.js 12.14.0)", Editor: "javascript", Extension: "js"},
	74: {ID: 74, Name: "TypeScript (3.7.4)", Editor: "typescript", Extension: "ts"},
	72: {ID: 72, Name: "Ruby (2.7.0)", Editor: "ruby", Extension: "rb"},
	46: {ID: 46, Name: "Bash (5.0.0)", Editor: "shell", Extension: "sh"},
	57: {ID: 57, Name: "Elixir (1.9.4)", Editor: "elixir", Extension: "ex"},
	54: {ID: 54, Name: "C++ (GCC 9.2.0)", Editor: "cpp", Extension: "cpp"},
	60: {ID: 60, Name: "Go (1.13.5)", Editor: "go", Extension: "go"},
	62: {ID: 62, Name: "Java (OpenJDK 13.0.1)", Editor: "java", Extension: "java"},
	68: {ID: 68, Name: "PHP (7.4.1)", Editor: "php", Extension: "php"},
	73: {ID: 73, Name: "Rust (1.40.0)", Editor: "rust", Extension: "rs"},
	51: {ID: 51, Name: "C# (Mono 6.6.0.161)", Editor: "csharp", Extension: "cs"},
	50: {ID: 50, Name: "C (GCC 9.2.0)", Editor: "c", Extension: "c"},
}

// LanguageName returns the display name for the id, or a placeholder
// carrying the id when the language is not in the table.
func LanguageName(id int) string {
	if language, ok := Languages[id]; ok {
		return language.Name
	}

	return "unknown (" + strconv.Itoa(id) + ")"
}

// SupportedLanguages returns the table ordered by display name.
func SupportedLanguages() []Language {
	supported := make([]Language, 0, len(Languages))

	for _, language := range Languages {
		supported = append(supported, language)
	}

	sort.Slice(supported, func(i, j int) bool {
		return supported[i].Name < supported[j].Name
	})

	return supported
}
