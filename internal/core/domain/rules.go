package domain

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// KeywordRule removes elements named Tag whose text content contains
// Keyword as a literal, case-sensitive substring. An empty keyword matches
// every element of that tag, making the rule equivalent to a by-name rule.
type KeywordRule struct {
	Tag     string
	Keyword string
}

// RuleSet accumulates removal criteria from repeated user specifications.
// It is a builder: all rules are added before filtering starts, and the set
// must not be modified once a filter pass is consulting it.
type RuleSet struct {
	tags            map[string]struct{}
	keywords        []KeywordRule
	matchAttributes bool
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{tags: make(map[string]struct{})}
}

// legacyCommentToken reports whether name is one of the historical
// "delete comments" tokens. Comments are always removed, so these are
// accepted and discarded rather than treated as element names.
func legacyCommentToken(name string) bool {
	return name == "comments" || name == "!--"
}

// AddTagNames adds by-name rules. Names are lower-cased and deduplicated;
// empty entries and legacy comment tokens are ignored. Repeated calls merge
// into the same set.
func (r *RuleSet) AddTagNames(names []string) {
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || legacyCommentToken(name) {
			continue
		}
		r.tags[name] = struct{}{}
	}
}

// AddKeywordRule adds a keyword rule for the given tag. The tag name is
// required; the keyword may be empty (the degenerate by-name case).
func (r *RuleSet) AddKeywordRule(tag, keyword string) error {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return fmt.Errorf("keyword rule %q has no tag name: %w", keyword, ErrInvalidRule)
	}
	r.keywords = append(r.keywords, KeywordRule{Tag: tag, Keyword: keyword})
	return nil
}

// SetMatchAttributes extends keyword matching to attribute values.
// The default is text content only.
func (r *RuleSet) SetMatchAttributes(v bool) {
	r.matchAttributes = v
}

// Empty reports whether the set holds no rules at all.
func (r *RuleSet) Empty() bool {
	return len(r.tags) == 0 && len(r.keywords) == 0
}

// Matches reports whether n is an element selected for removal. It is pure:
// the decision is made against the subtree as it stands when called.
func (r *RuleSet) Matches(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	name := strings.ToLower(n.Data)
	if _, ok := r.tags[name]; ok {
		return true
	}

	text := ""
	haveText := false
	for _, kr := range r.keywords {
		if kr.Tag != name {
			continue
		}
		if !haveText {
			text = TextContent(n)
			haveText = true
		}
		if strings.Contains(text, kr.Keyword) {
			return true
		}
		if r.matchAttributes && attrsContain(n, kr.Keyword) {
			return true
		}
	}
	return false
}
