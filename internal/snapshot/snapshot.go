// Package snapshot encodes the persisted state and loads it back, migrating
// older layouts and filling gaps from the seed.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/starford/boreacrutis/internal/apperr"
	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/seed"
	"github.com/starford/boreacrutis/internal/workspace"
)

// Ids and names of the tabs synthesized from a pre-tab snapshot.
const (
	MigratedProfilesTabID    = "tab-profiles-migrated"
	MigratedJobAdsTabID      = "tab-jobads-migrated"
	MigratedCaseStudiesTabID = "tab-casestudies-migrated"

	MigratedProfilesTabName    = "Profiles (Migrated)"
	MigratedJobAdsTabName      = "Job Ads"
	MigratedCaseStudiesTabName = "Case Studies"
)

// Source yields the raw persisted snapshot. It returns an error wrapping
// apperr.ErrNotFound when nothing has been saved yet.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
}

// Encode serializes s for persistence.
func Encode(s domain.State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return data, nil
}

// legacy is the flat layout used before tabs existed.
type legacy struct {
	CandidateProfiles []domain.CandidateProfile `json:"candidateProfiles"`
	JobAds            []domain.JobAd            `json:"jobAds"`
	CaseStudies       []domain.CaseStudy        `json:"caseStudies"`
}

// Decode parses a persisted snapshot. A snapshot with candidateProfiles and
// no tabs is migrated into three synthesized tabs. Otherwise the snapshot is
// merged over the seed state, and contentBlocks, candidateArchetypes and
// tabs each fall back to the seed when absent or empty.
func Decode(data []byte, now time.Time) (domain.State, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.State{}, fmt.Errorf("snapshot: decode: %w", err)
	}
	var patch workspace.StatePatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return domain.State{}, fmt.Errorf("snapshot: decode: %w", err)
	}

	initial := seed.InitialState(now)
	if isLegacy(fields) {
		var old legacy
		if err := json.Unmarshal(data, &old); err != nil {
			return domain.State{}, fmt.Errorf("snapshot: decode legacy: %w", err)
		}
		return migrate(initial, patch, old, now), nil
	}

	s := patch.Apply(initial)
	return withSeedFallbacks(s, initial), nil
}

func isLegacy(fields map[string]json.RawMessage) bool {
	return present(fields, "candidateProfiles") && !present(fields, "tabs")
}

func present(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	return ok && string(raw) != "null"
}

func migrate(initial domain.State, patch workspace.StatePatch, old legacy, now time.Time) domain.State {
	s := initial
	s.ContentBlocks = patch.ContentBlocks
	s.CandidateArchetypes = patch.CandidateArchetypes
	s.Tabs = []domain.Tab{
		{
			ID:         MigratedProfilesTabID,
			Name:       MigratedProfilesTabName,
			ModuleType: domain.ModuleProfiles,
			State:      domain.ProfileModuleState{Profiles: nonNil(old.CandidateProfiles)},
			CreatedAt:  now,
		},
		{
			ID:         MigratedJobAdsTabID,
			Name:       MigratedJobAdsTabName,
			ModuleType: domain.ModuleJobAds,
			State:      domain.JobAdModuleState{JobAds: nonNil(old.JobAds)},
			CreatedAt:  now,
		},
		{
			ID:         MigratedCaseStudiesTabID,
			Name:       MigratedCaseStudiesTabName,
			ModuleType: domain.ModuleCaseStudies,
			State:      domain.CaseStudyModuleState{CaseStudies: nonNil(old.CaseStudies)},
			CreatedAt:  now,
		},
	}
	s.ActiveTabID = domain.Ref(MigratedProfilesTabID)
	s.ActiveModule = domain.ModuleProfiles
	if patch.ActiveModule != nil && *patch.ActiveModule != "" {
		s.ActiveModule = *patch.ActiveModule
	}
	s.DarkMode = true
	if patch.DarkMode != nil {
		s.DarkMode = *patch.DarkMode
	}
	if patch.LibraryFilter != nil {
		s.LibraryFilter = *patch.LibraryFilter
	}
	return withSeedFallbacks(s, initial)
}

func withSeedFallbacks(s, initial domain.State) domain.State {
	if len(s.ContentBlocks) == 0 {
		s.ContentBlocks = initial.ContentBlocks
	}
	if len(s.CandidateArchetypes) == 0 {
		s.CandidateArchetypes = initial.CandidateArchetypes
	}
	if len(s.Tabs) == 0 {
		s.Tabs = initial.Tabs
	}
	if !s.ActiveModule.Valid() {
		s.ActiveModule = initial.ActiveModule
	}
	return s
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Load reads the snapshot from src. It never fails: a missing snapshot
// starts from the seed, and a read or decode failure is logged and also
// falls back to the seed.
func Load(ctx context.Context, src Source, logger *slog.Logger, now time.Time) domain.State {
	data, err := src.Load(ctx)
	if errors.Is(err, apperr.ErrNotFound) {
		logger.Info("no saved state, starting from seed")
		return seed.InitialState(now)
	}
	if err != nil {
		logger.Error("failed to load state", slog.String("error", err.Error()))
		return seed.InitialState(now)
	}
	s, err := Decode(data, now)
	if err != nil {
		logger.Error("failed to decode state", slog.String("error", err.Error()))
		return seed.InitialState(now)
	}
	return s
}
