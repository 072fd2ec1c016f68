package inbox

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/service"
	"github.com/starford/boreacrutis/internal/testutil"
)

type call struct {
	module domain.ModuleType
	text   string
}

type fakeImporter struct {
	mu    sync.Mutex
	calls []call
}

func (f *fakeImporter) Import(_ context.Context, m domain.ModuleType, tabID, text string) (service.Imported, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{module: m, text: text})
	return service.Imported{Module: m, TabID: "tab-" + string(m), EntityID: "e"}, nil
}

func (f *fakeImporter) snapshot() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func startWatcher(t *testing.T, setup func(dir string)) (string, *fakeImporter, *[]Result, *sync.Mutex) {
	t.Helper()
	dir, root := testutil.TestFS(t)
	for _, m := range Modules {
		_ = os.MkdirAll(filepath.Join(dir, string(m)), 0o755)
	}
	if setup != nil {
		setup(dir)
	}

	imp := &fakeImporter{}
	var mu sync.Mutex
	var results []Result
	w, err := New(root, imp, testutil.Logger(),
		WithSettle(20*time.Millisecond),
		WithCallback(func(r Result) {
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	time.Sleep(100 * time.Millisecond)
	return dir, imp, &results, &mu
}

func TestNewCreatesModuleFolders(t *testing.T) {
	dir, root := testutil.TestFS(t)
	if _, err := New(root, &fakeImporter{}, testutil.Logger()); err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, m := range Modules {
		if info, err := os.Stat(filepath.Join(dir, string(m))); err != nil || !info.IsDir() {
			t.Errorf("missing %s folder: %v", m, err)
		}
	}
}

func TestNewFileImported(t *testing.T) {
	dir, imp, results, mu := startWatcher(t, nil)

	_ = os.WriteFile(filepath.Join(dir, "jobads", "backend.md"), []byte("# Backend PM\n"), 0o644)

	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		return len(imp.snapshot()) == 1
	}, "file not imported")

	calls := imp.snapshot()
	if len(calls) != 1 || calls[0].module != domain.ModuleJobAds || calls[0].text != "# Backend PM\n" {
		t.Fatalf("calls = %+v", calls)
	}
	eventually(t, time.Second, 20*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(*results) == 1 && (*results)[0].Path == filepath.Join("jobads", "backend.md")
	}, "callback not called")

	// The file stays where it was dropped.
	if _, err := os.Stat(filepath.Join(dir, "jobads", "backend.md")); err != nil {
		t.Errorf("file removed: %v", err)
	}
}

func TestExistingFilesNotImported(t *testing.T) {
	dir, imp, _, _ := startWatcher(t, func(dir string) {
		_ = os.WriteFile(filepath.Join(dir, "profiles", "old.md"), []byte("# Old\n"), 0o644)
	})

	// Rewriting the same content is not a new document.
	_ = os.WriteFile(filepath.Join(dir, "profiles", "old.md"), []byte("# Old\n"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "profiles", "new.md"), []byte("# New\n"), 0o644)

	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		return len(imp.snapshot()) >= 1
	}, "new file not imported")
	time.Sleep(100 * time.Millisecond)

	calls := imp.snapshot()
	if len(calls) != 1 || calls[0].text != "# New\n" {
		t.Errorf("calls = %+v", calls)
	}
}

func TestEmptyAndDuplicateSkipped(t *testing.T) {
	dir, imp, _, _ := startWatcher(t, nil)

	_ = os.WriteFile(filepath.Join(dir, "casestudies", "blank.md"), []byte("  \n"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "casestudies", "a.md"), []byte("# Case\n"), 0o644)
	time.Sleep(150 * time.Millisecond)
	_ = os.WriteFile(filepath.Join(dir, "casestudies", "copy.md"), []byte("# Case\n"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# Root level\n"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "casestudies", "readme.txt"), []byte("ignored"), 0o644)

	time.Sleep(200 * time.Millisecond)
	calls := imp.snapshot()
	if len(calls) != 1 || calls[0].text != "# Case\n" {
		t.Errorf("calls = %+v", calls)
	}

	// Filling in the empty file imports it.
	_ = os.WriteFile(filepath.Join(dir, "casestudies", "blank.md"), []byte("# Filled\n"), 0o644)
	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		return len(imp.snapshot()) == 2
	}, "filled file not imported")
}

func TestNewSubdirectoryWatched(t *testing.T) {
	dir, imp, _, _ := startWatcher(t, nil)

	sub := filepath.Join(dir, "profiles", "batch")
	_ = os.MkdirAll(sub, 0o755)
	time.Sleep(100 * time.Millisecond)
	_ = os.WriteFile(filepath.Join(sub, "x.md"), []byte("# X\n"), 0o644)

	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		calls := imp.snapshot()
		return len(calls) == 1 && calls[0].module == domain.ModuleProfiles
	}, "file in new subdirectory not imported")
}

func TestModuleOf(t *testing.T) {
	cases := map[string]bool{
		"profiles/a.md":       true,
		"jobads/x/y.md":       true,
		"library/a.md":        false,
		"a.md":                false,
		"unknown/a.md":        false,
		"casestudies/case.md": true,
	}
	for p, want := range cases {
		if _, ok := moduleOf(p); ok != want {
			t.Errorf("moduleOf(%q) = %v, want %v", p, ok, want)
		}
	}
}
