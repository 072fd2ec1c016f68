package workspace

import (
	"fmt"
	"slices"

	"github.com/starford/boreacrutis/internal/domain"
)

// TargetTab picks the tab an import or creation for module should land in:
// the preferred tab when it exists and matches, else the active tab when it
// matches, else the first tab of the module.
func TargetTab(s domain.State, module domain.ModuleType, preferred string) (domain.Tab, bool) {
	if preferred != "" {
		t, ok := s.Tab(preferred)
		if ok && t.ModuleType == module {
			return t, true
		}
		return domain.Tab{}, false
	}
	if t, ok := s.ActiveTab(); ok && t.ModuleType == module {
		return t, true
	}
	tabs := s.TabsFor(module)
	if len(tabs) == 0 {
		return domain.Tab{}, false
	}
	return tabs[0], true
}

// DefaultTabName is the name given to a tab added without one.
func DefaultTabName(m domain.ModuleType) string {
	return fmt.Sprintf("New %s Tab", m)
}

// CloneName is the name given to a copy of a tab.
func CloneName(name string) string {
	return name + " (Copy)"
}

// uniqueTabID returns id, suffixed when another tab already holds it.
func uniqueTabID(s domain.State, id string) string {
	candidate := id
	for n := 2; ; n++ {
		if !slices.ContainsFunc(s.Tabs, func(t domain.Tab) bool { return t.ID == candidate }) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", id, n)
	}
}

// updateTab applies fn to the sub-state of tabID when the tab exists and is
// bound to the module that S belongs to. Otherwise s is returned untouched.
func updateTab[S domain.ModuleState](s domain.State, tabID string, fn func(S) S) domain.State {
	i := slices.IndexFunc(s.Tabs, func(t domain.Tab) bool { return t.ID == tabID })
	if i < 0 {
		return s
	}
	t := s.Tabs[i]
	sub, ok := t.State.(S)
	if !ok || t.ModuleType != sub.Module() {
		return s
	}
	t.State = fn(sub)
	tabs := slices.Clone(s.Tabs)
	tabs[i] = t
	s.Tabs = tabs
	return s
}

// replaceWhere returns a copy of items with every matching element
// replaced by fn(element), and whether anything matched.
func replaceWhere[T any](items []T, match func(T) bool, fn func(T) T) ([]T, bool) {
	i := slices.IndexFunc(items, match)
	if i < 0 {
		return items, false
	}
	out := slices.Clone(items)
	for ; i < len(out); i++ {
		if match(out[i]) {
			out[i] = fn(out[i])
		}
	}
	return out, true
}

// removeWhere returns a copy of items without the elements matching.
func removeWhere[T any](items []T, match func(T) bool) []T {
	if !slices.ContainsFunc(items, match) {
		return items
	}
	return slices.DeleteFunc(slices.Clone(items), match)
}

// appendCopy appends without writing into items' backing array.
func appendCopy[T any](items []T, v T) []T {
	return append(slices.Clip(items), v)
}

func clearIfSelected(sel *string, id string) *string {
	if domain.SameRef(sel, id) {
		return nil
	}
	return sel
}
