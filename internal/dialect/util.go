package dialect

import (
	"strings"
)

// GeneratePlaceholders is a helper function to create a slice of placeholder strings.
// It takes the number of placeholders needed and a function that returns the placeholder for a given index.
// It returns a comma-separated string of the generated placeholders.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// QuoteIdent wraps name in double quotes, doubling any embedded quote.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// uriEscaper escapes the characters SQLite's URI parser treats specially in a path.
var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// FileURI builds a "file:" URI for path with the given query parameters appended.
func FileURI(path, query string) string {
	uri := "file:" + uriEscaper.Replace(strings.ReplaceAll(path, `\`, "/"))
	if query != "" {
		uri += "?" + query
	}
	return uri
}
