package spendreport

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultCategory is assigned when no rule matches a description.
const DefaultCategory = "Other/Miscellaneous"

// CategorySpec is the configuration shape of one category rule: literal
// keywords tested before regex patterns, both against the uppercased
// description.
type CategorySpec struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Patterns    []string `json:"patterns,omitempty"`
}

// category is a compiled rule: keywords pre-uppercased, patterns compiled
// once at load time.
type category struct {
	name        string
	description string
	keywords    []string
	patterns    []*regexp.Regexp
}

// RuleSet holds the ordered, compiled category rules. Declaration order is
// semantically significant: the first matching category wins, so two rule
// sets with the same categories in a different order are different rule
// sets.
type RuleSet struct {
	categories []category
}

// NewRuleSet compiles category specs into a RuleSet. A malformed pattern
// is a configuration error, reported here rather than per transaction.
func NewRuleSet(specs []CategorySpec) (*RuleSet, error) {
	rs := &RuleSet{categories: make([]category, 0, len(specs))}
	for _, spec := range specs {
		c := category{
			name:        spec.Name,
			description: spec.Description,
			keywords:    make([]string, 0, len(spec.Keywords)),
		}
		for _, kw := range spec.Keywords {
			c.keywords = append(c.keywords, strings.ToUpper(kw))
		}
		for _, p := range spec.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("category %q: invalid pattern %q: %w", spec.Name, p, err)
			}
			c.patterns = append(c.patterns, re)
		}
		rs.categories = append(rs.categories, c)
	}
	return rs, nil
}

// MustRuleSet is like NewRuleSet but panics on error. It is meant for the
// built-in rule table, whose patterns are covered by tests.
func MustRuleSet(specs []CategorySpec) *RuleSet {
	rs, err := NewRuleSet(specs)
	if err != nil {
		panic(err.Error())
	}
	return rs
}

// Classify assigns a description to exactly one category name.
//
// Categories are evaluated in declared order. Within a category all
// keywords are tested first (substring match on the uppercased
// description); patterns are only consulted when no keyword of that
// category matched. The first category to match wins and later ones are
// never evaluated. An empty description, or no match at all, yields
// DefaultCategory.
func (rs *RuleSet) Classify(description string) string {
	if description == "" {
		return DefaultCategory
	}
	upper := strings.ToUpper(description)
	for _, c := range rs.categories {
		for _, kw := range c.keywords {
			if strings.Contains(upper, kw) {
				return c.name
			}
		}
		for _, re := range c.patterns {
			if re.MatchString(upper) {
				return c.name
			}
		}
	}
	return DefaultCategory
}

// Names returns the category names in declaration order, with
// DefaultCategory appended.
func (rs *RuleSet) Names() []string {
	names := make([]string, 0, len(rs.categories)+1)
	for _, c := range rs.categories {
		names = append(names, c.name)
	}
	return append(names, DefaultCategory)
}

// Describe returns the human-readable description of a category name, or
// the name itself when it has none.
func (rs *RuleSet) Describe(name string) string {
	for _, c := range rs.categories {
		if c.name == name && c.description != "" {
			return c.description
		}
	}
	return name
}
