package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrRuleOrder = errors.New("replacement rule shadowed by an earlier, shorter rule")

// Rule replaces every occurrence of Old with New.
type Rule struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// RuleSet is an ordered list of rules. Longer, more specific literals must
// come before any literal they contain.
type RuleSet []Rule

// ContentRules returns the substitutions applied to file contents when
// renaming from one identity to another.
func ContentRules(from, to NamingProfile) RuleSet {
	return RuleSet{
		{Old: from.ResourcePath, New: to.ResourcePath},
		{Old: from.AppID, New: to.AppID},
		{Old: from.DisplayName, New: to.DisplayName},
		{Old: from.ClassPrefix, New: to.ClassPrefix},
		{Old: from.Module, New: to.Module},
		{Old: from.Slug, New: to.Slug},
	}.compact()
}

// FileNameRules returns the substitutions applied to file names. The app ID
// goes first since it is the more specific literal.
func FileNameRules(from, to NamingProfile) RuleSet {
	return RuleSet{
		{Old: from.AppID, New: to.AppID},
		{Old: from.Slug, New: to.Slug},
	}.compact()
}

// compact drops no-op and empty rules. When two rules share an Old literal,
// as the module name and slug of a single-word project do, only the later
// one is kept: later rules carry the identifier forms (class prefix, slug).
func (rs RuleSet) compact() RuleSet {
	last := make(map[string]int, len(rs))
	for i, r := range rs {
		last[r.Old] = i
	}
	out := make(RuleSet, 0, len(rs))
	for i, r := range rs {
		if r.Old == "" || r.Old == r.New || last[r.Old] != i {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Apply runs every rule over s in order.
func (rs RuleSet) Apply(s string) string {
	for _, r := range rs {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	return s
}

// Matches reports whether any rule's Old literal occurs in s.
func (rs RuleSet) Matches(s string) bool {
	for _, r := range rs {
		if strings.Contains(s, r.Old) {
			return true
		}
	}
	return false
}

// Validate checks that no rule is preceded by a shorter rule whose literal
// it contains. An equal literal is harmless: the later rule finds nothing left
// to replace.
func (rs RuleSet) Validate() error {
	for j := range rs {
		for i := 0; i < j; i++ {
			if len(rs[j].Old) > len(rs[i].Old) && strings.Contains(rs[j].Old, rs[i].Old) {
				return fmt.Errorf("%w: %q (rule %d) contains %q (rule %d)",
					ErrRuleOrder, rs[j].Old, j, rs[i].Old, i)
			}
		}
	}
	return nil
}
