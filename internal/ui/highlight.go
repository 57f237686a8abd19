// Package ui provides output and interactive components for the CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlight applies terminal syntax highlighting to data in the given
// language ("yaml" or "json"). Non-terminal output is passed through
// untouched so pipes stay clean.
func Highlight(data []byte, lang string) (string, error) {
	if !IsTerminal() {
		return string(data), nil
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(data))
	if err != nil {
		return "", fmt.Errorf("failed to tokenize %s: %w", lang, err)
	}

	var result strings.Builder
	if err := formatter.Format(&result, style, iterator); err != nil {
		return "", fmt.Errorf("failed to format %s: %w", lang, err)
	}

	return result.String(), nil
}
