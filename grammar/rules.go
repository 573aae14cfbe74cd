package grammar

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/lexkit/engine"
)

// RulesFile is the YAML description of a grammar: the identifier's character
// classes, the keywords, and the reservation policy.
type RulesFile struct {
	Identifier IdentifierRule `yaml:"identifier"`
	Keywords   []string       `yaml:"keywords"`
	Reserved   ReservedRule   `yaml:"reserved"`
}

// IdentifierRule names the leading and trailing character classes. A class
// spec is a space-separated list of single characters, ranges ("a-z"), or
// class names (letter, lower, upper, digit, alnum).
type IdentifierRule struct {
	Leading  string `yaml:"leading"`
	Trailing string `yaml:"trailing"`
}

// ReservedRule lists identifiers excluded by policy: exact words, prefixes
// ("everything starting with"), and fragments ("everything containing").
type ReservedRule struct {
	Words      []string `yaml:"words"`
	Prefixes   []string `yaml:"prefixes"`
	Containing []string `yaml:"containing"`
}

// DefaultRules describes a C-style identifier with no keywords.
func DefaultRules() *RulesFile {
	return &RulesFile{
		Identifier: IdentifierRule{
			Leading:  "letter _",
			Trailing: "alnum _",
		},
	}
}

// LoadRulesFile reads and parses a YAML rules file.
func LoadRulesFile(path string) (*RulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRulesFile(data)
}

// ParseRulesFile parses YAML rules data.
func ParseRulesFile(data []byte) (*RulesFile, error) {
	rf := &RulesFile{}
	if err := yaml.Unmarshal(data, rf); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	return rf, nil
}

var namedClasses = map[string][]engine.ClassRange{
	"lower":  {{Lo: 'a', Hi: 'z'}},
	"upper":  {{Lo: 'A', Hi: 'Z'}},
	"letter": {{Lo: 'a', Hi: 'z'}, {Lo: 'A', Hi: 'Z'}},
	"digit":  {{Lo: '0', Hi: '9'}},
	"alnum":  {{Lo: 'a', Hi: 'z'}, {Lo: 'A', Hi: 'Z'}, {Lo: '0', Hi: '9'}},
}

// ParseClass compiles a class spec into a character class engine named for
// diagnostics.
func ParseClass(name, spec string) (*engine.Class, error) {
	var ranges []engine.ClassRange
	for _, item := range strings.Fields(spec) {
		if named, ok := namedClasses[item]; ok {
			ranges = append(ranges, named...)
			continue
		}
		runes := []rune(item)
		switch {
		case len(runes) == 1:
			ranges = append(ranges, engine.ClassRange{Lo: runes[0], Hi: runes[0]})
		case len(runes) == 3 && runes[1] == '-':
			if runes[0] > runes[2] {
				return nil, fmt.Errorf("class %s: inverted range %q", name, item)
			}
			ranges = append(ranges, engine.ClassRange{Lo: runes[0], Hi: runes[2]})
		default:
			return nil, fmt.Errorf("class %s: unknown item %q", name, item)
		}
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("class %s: empty spec", name)
	}
	return engine.NewClass(name, ranges...), nil
}

func validWord(word string) bool {
	return word != "" && utf8.ValidString(word)
}
