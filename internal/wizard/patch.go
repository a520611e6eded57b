// Package wizard implements the interactive init wizard.
//
// # TOML Rewrite Strategy
//
// Config updates use custom line-based editing instead of the go-toml
// library's tree manipulation:
//
//  1. Comment preservation: serializing a parsed tree loses inline
//     comments and rearranges leading comments. Users expect their config
//     formatting to be preserved.
//
//  2. Key positioning: missing keys are inserted where the shipped
//     template puts them, so a patched file reads like a fresh one.
//
// The go-toml library is still used for syntax validation before and
// after editing.
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	// toml is used for syntax validation only; the rewrite itself is
	// line-based to preserve comments and formatting.
	toml "github.com/pelletier/go-toml"

	"github.com/pipboot/pipboot/internal/config"
	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/templates"
)

// patchKeys lists the editable keys in template order. The second field
// names the key a missing entry is inserted after.
var patchKeys = []struct {
	key      string
	afterKey string
}{
	{"index_url", ""},
	{"python", "index_url"},
	{"cache_dir", "python"},
}

// PatchConfig applies wizard choices to config file content, preserving
// comments and any lines it does not manage.
func PatchConfig(content string, choices *Choices) (string, error) {
	if _, err := toml.LoadBytes([]byte(content)); err != nil {
		return "", fmt.Errorf(messages.WizardParseConfigFailedFmt, err)
	}

	templateBytes, err := templates.Read(config.FileName)
	if err != nil {
		return "", fmt.Errorf(messages.WizardReadTemplateFailedFmt, err)
	}
	templateLines := strings.Split(string(templateBytes), "\n")

	lines := trimTrailingEmptyLines(strings.Split(content, "\n"))
	for _, entry := range patchKeys {
		value, touched := choices.valueFor(entry.key)
		if !touched {
			continue
		}
		lines = setKeyValue(lines, templateLines, entry.key, value, entry.afterKey)
	}

	out := strings.Join(lines, "\n") + "\n"
	if _, err := toml.LoadBytes([]byte(out)); err != nil {
		return "", fmt.Errorf(messages.WizardPatchedConfigInvalidFmt, err)
	}
	return out, nil
}

// valueFor maps a patch key to the corresponding choice and touched flag.
func (c *Choices) valueFor(key string) (string, bool) {
	switch key {
	case "index_url":
		return c.IndexURL, c.IndexURLTouched
	case "python":
		return c.Python, c.PythonTouched
	case "cache_dir":
		return c.CacheDir, c.CacheDirTouched
	}
	return "", false
}

// keyLine holds a parsed key/value line with comment metadata.
type keyLine struct {
	raw           string
	indent        string
	commented     bool
	inlineComment string
}

// parseKeyLine parses a key/value assignment line. Returns false when the
// line does not define the requested key.
func parseKeyLine(line string, key string) (keyLine, bool) {
	indentLen := len(line) - len(strings.TrimLeft(line, " \t"))
	indent := line[:indentLen]
	trimmed := strings.TrimLeft(line[indentLen:], " \t")
	commented := false
	if strings.HasPrefix(trimmed, "#") {
		commented = true
		trimmed = strings.TrimLeft(strings.TrimPrefix(trimmed, "#"), " \t")
	}
	if !strings.HasPrefix(trimmed, key) {
		return keyLine{}, false
	}
	rest := strings.TrimSpace(trimmed[len(key):])
	if !strings.HasPrefix(rest, "=") {
		return keyLine{}, false
	}
	return keyLine{raw: line, indent: indent, commented: commented, inlineComment: extractInlineComment(rest)}, true
}

// extractInlineComment returns the comment portion of a value assignment,
// ignoring hash characters inside quoted strings.
func extractInlineComment(rest string) string {
	inString := false
	var quote byte
	for i := 0; i < len(rest); i++ {
		ch := rest[i]
		switch {
		case inString:
			if ch == quote {
				inString = false
			}
		case ch == '"' || ch == '\'':
			inString = true
			quote = ch
		case ch == '#':
			return strings.TrimSpace(rest[i:])
		}
	}
	return ""
}

// findKeyLine searches lines for a key/value assignment.
func findKeyLine(lines []string, key string) (keyLine, bool) {
	for _, line := range lines {
		if parsed, ok := parseKeyLine(line, key); ok {
			return parsed, true
		}
	}
	return keyLine{}, false
}

// buildKeyLine renders a key/value line using indentation and inline
// comment from base.
func buildKeyLine(base keyLine, key string, value string) string {
	line := fmt.Sprintf("%s%s = %s", base.indent, key, strconv.Quote(value))
	if base.inlineComment != "" {
		line += " " + base.inlineComment
	}
	return line
}

// setKeyValue updates or inserts a key/value line. An existing uncommented
// line is replaced in place; a commented-out line is uncommented; a missing
// key is inserted after afterKey using the template's formatting. Any other
// lines defining the same key (commented-out leftovers; TOML rejects a live
// duplicate) are dropped.
func setKeyValue(lines []string, templateLines []string, key string, value string, afterKey string) []string {
	base := keyLine{}
	if templateLine, ok := findKeyLine(templateLines, key); ok {
		base = templateLine
	}

	var matches []int
	uncommentedIndex := -1
	for i, line := range lines {
		parsed, ok := parseKeyLine(line, key)
		if !ok {
			continue
		}
		matches = append(matches, i)
		if !parsed.commented && uncommentedIndex == -1 {
			uncommentedIndex = i
			base = parsed
		}
	}

	newLine := buildKeyLine(base, key, value)
	if len(matches) > 0 {
		replaceAt := matches[0]
		if uncommentedIndex >= 0 {
			replaceAt = uncommentedIndex
		}
		lines[replaceAt] = newLine
		// Remove duplicate key lines in reverse order to avoid index shifting.
		for i := len(matches) - 1; i >= 0; i-- {
			if matches[i] == replaceAt {
				continue
			}
			lines = append(lines[:matches[i]], lines[matches[i]+1:]...)
		}
		return lines
	}

	insertAt := findInsertIndex(lines, afterKey)
	return append(lines[:insertAt], append([]string{newLine}, lines[insertAt:]...)...)
}

// findInsertIndex returns the index to insert a new key line: after
// afterKey when present, otherwise at the end of the file.
func findInsertIndex(lines []string, afterKey string) int {
	if afterKey != "" {
		for i, line := range lines {
			if _, ok := parseKeyLine(line, afterKey); ok {
				return i + 1
			}
		}
	}
	return len(lines)
}

// trimTrailingEmptyLines drops blank lines at the end of the document.
func trimTrailingEmptyLines(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
