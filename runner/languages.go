package runner

import "strings"

// Language is one entry of the language selector.
type Language struct {
	// Name is the display name.
	Name string
	// Runtime is the execution service's language key.
	Runtime string
	// Version pins the runtime version.
	Version string
}

var languages = []Language{
	{Name: "C", Runtime: "c", Version: "10.2.0"},
	{Name: "C++", Runtime: "cpp", Version: "10.2.0"},
	{Name: "C#", Runtime: "csharp", Version: "6.12.0"},
	{Name: "JavaScript", Runtime: "javascript", Version: "18.15.0"},
	{Name: "Java", Runtime: "java", Version: "15.0.2"},
	{Name: "Python", Runtime: "python", Version: "3.10.0"},
	{Name: "Ruby", Runtime: "ruby", Version: "3.0.0"},
	{Name: "Rust", Runtime: "rust", Version: "1.72.0"},
	{Name: "Swift", Runtime: "swift", Version: "5.3.3"},
	{Name: "Go", Runtime: "go", Version: "1.20.0"},
}

// DefaultLanguage is selected when nothing else is configured.
const DefaultLanguage = "javascript"

// Languages returns the supported languages in selector order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Lookup finds a language by runtime key or display name, ignoring case.
func Lookup(name string) (Language, bool) {
	name = strings.TrimSpace(name)
	for _, l := range languages {
		if strings.EqualFold(l.Runtime, name) || strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Language{}, false
}

// Next returns the language after name in selector order, wrapping around.
// Unknown names start from the first entry.
func Next(name string) Language {
	for i, l := range languages {
		if strings.EqualFold(l.Runtime, name) || strings.EqualFold(l.Name, name) {
			return languages[(i+1)%len(languages)]
		}
	}
	return languages[0]
}
