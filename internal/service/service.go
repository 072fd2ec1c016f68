// Package service is the application facade shared by the HTTP API, the MCP
// server, the CLI and the inbox watcher.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/starford/boreacrutis/internal/apperr"
	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/intake"
	"github.com/starford/boreacrutis/internal/library"
	"github.com/starford/boreacrutis/internal/markdown"
	"github.com/starford/boreacrutis/internal/snapshot"
	"github.com/starford/boreacrutis/internal/store"
	"github.com/starford/boreacrutis/internal/workspace"
)

// TabSummary is a lightweight listing entry for a tab.
type TabSummary struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	ModuleType domain.ModuleType `json:"moduleType"`
	Items      int               `json:"items"`
	Active     bool              `json:"active"`
}

// Imported identifies the entity created by Import.
type Imported struct {
	Module   domain.ModuleType `json:"module"`
	TabID    string            `json:"tabId"`
	EntityID string            `json:"entityId"`
	Title    string            `json:"title"`
}

// Export is a serialised entity ready to be written to disk or served.
type Export struct {
	Filename string `json:"filename"`
	Markdown string `json:"markdown"`
}

// LibraryView is the filtered content library.
type LibraryView struct {
	Filter domain.LibraryFilter  `json:"filter"`
	Blocks []domain.ContentBlock `json:"blocks"`
	Stats  library.Stats         `json:"stats"`
}

// Service coordinates the store, document intake and export.
type Service struct {
	store  *store.Store
	intake *intake.Intake
	format markdown.Formatter
}

// New creates a Service. A nil intake uses intake.New().
func New(st *store.Store, in *intake.Intake, format markdown.Formatter) *Service {
	if in == nil {
		in = intake.New()
	}
	return &Service{store: st, intake: in, format: format}
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store { return s.store }

// State returns the current state.
func (s *Service) State() domain.State { return s.store.State() }

// Snapshot returns the current state in its persisted encoding.
func (s *Service) Snapshot() ([]byte, error) {
	return snapshot.Encode(s.store.State())
}

// Dispatch applies a and returns the resulting state.
func (s *Service) Dispatch(ctx context.Context, a workspace.Action) domain.State {
	return s.store.Dispatch(ctx, a)
}

// DispatchJSON decodes one wire-format action and dispatches it.
func (s *Service) DispatchJSON(ctx context.Context, raw []byte) (domain.State, error) {
	a, err := workspace.DecodeAction(raw)
	if err != nil {
		return domain.State{}, err
	}
	return s.store.Dispatch(ctx, a), nil
}

// ParseModule validates a module name from an external surface.
func ParseModule(name string) (domain.ModuleType, error) {
	m := domain.ModuleType(strings.ToLower(strings.TrimSpace(name)))
	if !m.Valid() {
		return "", fmt.Errorf("service: %w: unknown module %q", apperr.ErrInvalidInput, name)
	}
	return m, nil
}

// Tabs lists the tabs of module, or every tab when module is empty.
func (s *Service) Tabs(module domain.ModuleType) []TabSummary {
	st := s.store.State()
	out := []TabSummary{}
	for _, t := range st.Tabs {
		if module != "" && t.ModuleType != module {
			continue
		}
		out = append(out, TabSummary{
			ID:         t.ID,
			Name:       t.Name,
			ModuleType: t.ModuleType,
			Items:      itemCount(t),
			Active:     domain.SameRef(st.ActiveTabID, t.ID),
		})
	}
	return out
}

func itemCount(t domain.Tab) int {
	if p, ok := t.Profiles(); ok {
		return len(p.Profiles)
	}
	if j, ok := t.JobAds(); ok {
		return len(j.JobAds)
	}
	if c, ok := t.CaseStudies(); ok {
		return len(c.CaseStudies)
	}
	return 0
}

// Import parses text as a document of module and adds the entity to the
// target tab: tabID if given, else the active tab when it belongs to module,
// else the first tab of module. Blank text and missing tabs dispatch nothing.
func (s *Service) Import(ctx context.Context, module domain.ModuleType, tabID, text string) (Imported, error) {
	if !module.HasTabs() {
		return Imported{}, fmt.Errorf("service: import: %w: module %q does not accept documents", apperr.ErrInvalidInput, module)
	}
	if strings.TrimSpace(text) == "" {
		return Imported{}, fmt.Errorf("service: import: %w: empty document", apperr.ErrInvalidInput)
	}
	tab, ok := workspace.TargetTab(s.store.State(), module, tabID)
	if !ok {
		return Imported{}, fmt.Errorf("service: import: %w: no %s tab %q", apperr.ErrNotFound, module, tabID)
	}
	a, err := s.intake.ImportAction(module, tab.ID, text)
	if err != nil {
		return Imported{}, err
	}
	out := Imported{Module: module, TabID: tab.ID}
	switch a := a.(type) {
	case workspace.AddProfile:
		out.EntityID, out.Title = a.Profile.ID, a.Profile.Name
	case workspace.AddJobAd:
		out.EntityID, out.Title = a.JobAd.ID, a.JobAd.Title
	case workspace.AddCaseStudy:
		out.EntityID, out.Title = a.CaseStudy.ID, a.CaseStudy.Title
	}
	s.store.Dispatch(ctx, a)
	return out, nil
}

// Export serialises one entity of a tab to markdown.
func (s *Service) Export(module domain.ModuleType, tabID, entityID string) (Export, error) {
	tab, ok := s.store.State().Tab(tabID)
	if !ok || tab.ModuleType != module {
		return Export{}, fmt.Errorf("service: export: %w: no %s tab %q", apperr.ErrNotFound, module, tabID)
	}
	var title, body string
	found := false
	switch module {
	case domain.ModuleProfiles:
		ps, _ := tab.Profiles()
		if p, ok := ps.Profile(entityID); ok {
			title, body, found = p.Name, s.format.Profile(p), true
		}
	case domain.ModuleJobAds:
		js, _ := tab.JobAds()
		if j, ok := js.JobAd(entityID); ok {
			title, body, found = j.Title, s.format.JobAd(j), true
		}
	case domain.ModuleCaseStudies:
		cs, _ := tab.CaseStudies()
		if c, ok := cs.CaseStudy(entityID); ok {
			title, body, found = c.Title, s.format.CaseStudy(c), true
		}
	}
	if !found {
		return Export{}, fmt.Errorf("service: export: %w: %s %q in tab %q", apperr.ErrNotFound, module, entityID, tabID)
	}
	return Export{Filename: markdown.Filename(title), Markdown: body}, nil
}

// ExportHTML renders the exported markdown as an HTML preview.
func (s *Service) ExportHTML(module domain.ModuleType, tabID, entityID string) (Export, []byte, error) {
	exp, err := s.Export(module, tabID, entityID)
	if err != nil {
		return Export{}, nil, err
	}
	html, err := markdown.RenderHTML(exp.Markdown)
	if err != nil {
		return Export{}, nil, fmt.Errorf("service: export html: %w", err)
	}
	return exp, html, nil
}

// Library returns the blocks matching the state's library filter, with
// counts over the whole library.
func (s *Service) Library() LibraryView {
	st := s.store.State()
	return LibraryView{
		Filter: st.LibraryFilter,
		Blocks: library.Filter(st.ContentBlocks, st.LibraryFilter),
		Stats:  library.Summarize(st.ContentBlocks),
	}
}

// ContentBlocks returns the blocks matching f, ignoring the stored filter.
func (s *Service) ContentBlocks(f domain.LibraryFilter) []domain.ContentBlock {
	return library.Filter(s.store.State().ContentBlocks, f)
}
