package location

import (
	"regexp"
	"strings"
)

const phrase = `([a-z0-9][a-z0-9 .'&-]*?)\s*(?:[,!?;:]|\.(?:\s|$)|$)`

// mentionPatterns are tried in order; each captures a candidate place name
var mentionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:near|close to|next to|around|by)\s+(?:the\s+)?` + phrase),
	regexp.MustCompile(`\b(?:going to|heading to|visiting|at)\s+(?:the\s+)?` + phrase),
	regexp.MustCompile(`\b((?:[a-z0-9'.&-]+\s+){0,3}(?:building|center|centre|library|quad))\b`),
}

// connectors end a captured phrase ("library for my class" -> "library")
var connectors = map[string]bool{
	"for": true, "on": true, "at": true, "from": true, "to": true, "before": true,
	"after": true, "because": true, "so": true, "and": true, "with": true, "when": true,
}

// fillers are dropped from the end of a captured phrase
var fillers = map[string]bool{
	"please": true, "today": true, "tomorrow": true, "tonight": true, "now": true,
	"asap": true, "again": true,
}

// ExtractMention isolates a location named in a sentence and returns its
// registry key. Phrase patterns are tried first; if none resolves, the
// sentence is scanned for any key or alias appearing literally.
func (r *Resolver) ExtractMention(sentence string) (string, bool) {
	s := normalize(sentence)
	if s == "" {
		return "", false
	}

	for _, re := range mentionPatterns {
		for _, m := range re.FindAllStringSubmatch(s, -1) {
			candidate := trimPhrase(m[1])
			if candidate == "" {
				continue
			}
			if entry, ok := r.Resolve(candidate); ok {
				return entry.Key, true
			}
		}
	}

	for _, entry := range r.registry.entries {
		if strings.Contains(s, entry.Key) {
			return entry.Key, true
		}
		for _, alias := range entry.Aliases {
			if strings.Contains(s, alias) {
				return entry.Key, true
			}
		}
	}

	return "", false
}

func trimPhrase(p string) string {
	words := strings.Fields(p)
	for i, w := range words {
		if connectors[w] {
			words = words[:i]
			break
		}
	}
	for len(words) > 0 && fillers[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
