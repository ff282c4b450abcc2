// Package langdetect guesses the runtime language of a snippet using
// go-enry. Results are always one of the runner's runtime keys.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no supported language could be detected.
const Unknown = ""

// enryToRuntime maps linguist language names to runtime keys.
var enryToRuntime = map[string]string{
	"C":          "c",
	"C++":        "cpp",
	"C#":         "csharp",
	"JavaScript": "javascript",
	"Java":       "java",
	"Python":     "python",
	"Ruby":       "ruby",
	"Rust":       "rust",
	"Swift":      "swift",
	"Go":         "go",
}

var candidates = []string{
	"C", "C++", "C#", "JavaScript", "Java", "Python", "Ruby", "Rust", "Swift", "Go",
}

// Detect returns the runtime key for content, or Unknown.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		if rt, ok := enryToRuntime[lang]; ok {
			return rt
		}
	}

	if lang := detectByPattern(trimmed); lang != Unknown {
		return lang
	}

	if lang, _ := enry.GetLanguageByClassifier(content, candidates); lang != "" {
		return enryToRuntime[lang]
	}
	return Unknown
}

// DetectFile prefers the file name and falls back to content.
func DetectFile(filename string, content []byte) string {
	if lang, safe := enry.GetLanguageByExtension(filename); safe {
		if rt, ok := enryToRuntime[lang]; ok {
			return rt
		}
	}
	return Detect(content)
}

// detectByPattern checks for a few highly indicative openings.
func detectByPattern(trimmed []byte) string {
	s := string(trimmed)
	switch {
	case strings.HasPrefix(s, "package ") && strings.Contains(s, "func "):
		return "go"
	case strings.Contains(s, "fn main()"):
		return "rust"
	case strings.Contains(s, "#include"):
		if strings.Contains(s, "std::") || strings.Contains(s, "<iostream>") {
			return "cpp"
		}
		return "c"
	case strings.Contains(s, "public static void main"):
		return "java"
	case strings.HasPrefix(s, "using System"):
		return "csharp"
	case strings.HasPrefix(s, "def ") && strings.Contains(s, ":\n"):
		return "python"
	}
	return Unknown
}
