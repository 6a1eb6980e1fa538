package parser

import (
	"regexp"
	"strings"

	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
)

// Rule is one entry of the classifier priority table.
// Match receives the lower-cased header text and its normalized form.
type Rule struct {
	Name  string
	Match func(raw, norm string, keys models.KeySet) (string, bool)
}

// Classifier maps assembled header text to a canonical property key.
// Rules are evaluated in order and the first match wins.
type Classifier struct {
	Keys  models.KeySet
	Rules []Rule
}

// NewClassifier returns a classifier using DefaultRules over keys.
func NewClassifier(keys models.KeySet) *Classifier {
	return &Classifier{Keys: keys, Rules: DefaultRules()}
}

// Classify returns the canonical key for a header, or false when no rule matches.
func (c *Classifier) Classify(header string) (string, bool) {
	key, _, ok := c.classify(header)
	return key, ok
}

func (c *Classifier) classify(header string) (string, string, bool) {
	raw := strings.ToLower(header)
	norm := NormalizeText(raw)
	for _, rule := range c.Rules {
		if key, ok := rule.Match(raw, norm, c.Keys); ok {
			return key, rule.Name, true
		}
	}
	return "", "", false
}

const (
	evapPhrase   = `evap(?:oration)?`
	liquidPhrase = `sat(?:\.|urated)?\s*(?:liquid|solid).*`
	vaporPhrase  = `sat(?:\.|urated)?\s*vap(?:or)?`
)

var parenToken = regexp.MustCompile(`\(\s*([a-z0-9]+)\s*\)`)

// DefaultRules returns the priority table for thermodynamic property headers.
//
// Order matters: fg keys must be tried before f/g keys since "ufg" contains
// "uf", and the g keys of u, h and s are rejected when their fg token is present.
func DefaultRules() []Rule {
	rules := []Rule{tokenRule()}
	for _, key := range []string{"vfg", "ufg", "hfg", "sfg"} {
		rules = append(rules, saturationRule(key, evapPhrase, ""))
	}
	rules = append(rules,
		saturationRule("vf", liquidPhrase, ""),
		saturationRule("vg", vaporPhrase, ""),
		saturationRule("uf", liquidPhrase, ""),
		saturationRule("ug", vaporPhrase, "ufg"),
		saturationRule("hf", liquidPhrase, ""),
		saturationRule("hg", vaporPhrase, "hfg"),
		saturationRule("sf", liquidPhrase, ""),
		saturationRule("sg", vaporPhrase, "sfg"),

		normRule(models.KeyT, `\b(?:temp|temperature|tsat)\b`),
		normRule(models.KeyP, `\b(?:press|pressure|psat)\b`),

		pairRule("v", `\bvolume\b`),
		pairRule("u", `\binternal\s+energy\b`),
		pairRule("h", `\benthalpy\b`),
		pairRule("s", `\bentropy\b`),

		exactRule("v", "v"),
		exactRule("u", "u"),
		exactRule("h", "h"),
		exactRule("s", "s"),
		exactRule(models.KeyT, "temperature"),
		exactRule(models.KeyP, "pressure"),
	)
	return rules
}

// tokenRule matches a parenthesized token such as "(vfg)" that is itself a key.
// The token is taken from lower-cased text, so "(T)" is left to the index rules.
func tokenRule() Rule {
	return Rule{
		Name: "token",
		Match: func(raw, _ string, keys models.KeySet) (string, bool) {
			for _, m := range parenToken.FindAllStringSubmatch(raw, -1) {
				if keys.Contains(m[1]) {
					return m[1], true
				}
			}
			return "", false
		},
	}
}

// saturationRule matches the bare token, the parenthesized token or a
// "<phrase> (<key>)" label. When exclude is set the rule fails if exclude
// occurs anywhere in the text.
func saturationRule(key, phrase, exclude string) Rule {
	pattern := `\b` + key + `\b|\(\s*` + key + `\s*\)`
	if phrase != "" {
		pattern += `|` + phrase + `\s*\(\s*` + key + `\s*\)`
	}
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: "saturation:" + key,
		Match: func(raw, _ string, _ models.KeySet) (string, bool) {
			if exclude != "" && strings.Contains(raw, exclude) {
				return "", false
			}
			return key, re.MatchString(raw)
		},
	}
}

func normRule(key, pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: "index:" + key,
		Match: func(_, norm string, _ models.KeySet) (string, bool) {
			return key, re.MatchString(norm)
		},
	}
}

// pairRule needs both the property word and its single-letter symbol.
func pairRule(key, word string) Rule {
	wordRe := regexp.MustCompile(word)
	symbolRe := regexp.MustCompile(`\b` + key + `\b`)
	return Rule{
		Name: "grid:" + key,
		Match: func(_, norm string, _ models.KeySet) (string, bool) {
			return key, wordRe.MatchString(norm) && symbolRe.MatchString(norm)
		},
	}
}

func exactRule(key, text string) Rule {
	return Rule{
		Name: "exact:" + text,
		Match: func(_, norm string, _ models.KeySet) (string, bool) {
			return key, norm == text
		},
	}
}
