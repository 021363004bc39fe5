package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/learnaz/internal/backend"
	"github.com/atomicstack/learnaz/internal/catalog"
	"github.com/atomicstack/learnaz/internal/feed"
	"github.com/atomicstack/learnaz/internal/prompt"
	"github.com/atomicstack/learnaz/internal/state"
	"github.com/atomicstack/learnaz/internal/store"
	"github.com/atomicstack/learnaz/internal/theme"
)

var testNow = time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	harness *Harness
	kv      store.Store
	copied  []string
	now     time.Time
}

type envOption func(*Options)

func withRecords(records []feed.Record) envOption {
	return func(o *Options) { o.Catalog = state.NewCatalogStore(records) }
}

func withSize(w, h int) envOption {
	return func(o *Options) { o.Width, o.Height = w, h }
}

func withAssets(dir string) envOption {
	return func(o *Options) { o.AssetsDir = dir }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	assets := t.TempDir()
	if err := os.WriteFile(filepath.Join(assets, feed.DefaultImage), []byte("png"), 0o644); err != nil {
		t.Fatalf("write default image: %v", err)
	}
	env := &testEnv{kv: store.NewMemory(), now: testNow}
	o := Options{
		Width:     100,
		Height:    40,
		Catalog:   state.NewCatalogStore(catalog.Default()),
		Store:     env.kv,
		AssetsDir: assets,
		Clock:     func() time.Time { return env.now },
		Rand:      func() float64 { return 0 },
		Clipboard: prompt.CopierFunc(func(text string) error {
			env.copied = append(env.copied, text)
			return nil
		}),
	}
	for _, opt := range opts {
		opt(&o)
	}
	env.harness = NewHarness(NewModel(o))
	return env
}

func (e *testEnv) model() *Model { return e.harness.Model() }

func (e *testEnv) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		e.harness.Send(msg)
	}
}

func (e *testEnv) typeText(text string) {
	for _, r := range text {
		if r == ' ' {
			e.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}})
			continue
		}
		e.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func cardTitles(m *Model) []string {
	titles := make([]string, len(m.list.Cards))
	for i, card := range m.list.Cards {
		titles[i] = card.Title
	}
	return titles
}

func TestInitialFeedRendersEveryRecord(t *testing.T) {
	env := newTestEnv(t)
	m := env.model()
	if got := len(m.list.Cards); got != 5 {
		t.Fatalf("expected 5 cards, got %d", got)
	}
	view := env.harness.View()
	for _, want := range []string{"Open multimodal model hits new benchmark", "Sep 18, 2025", "Research"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	env := newTestEnv(t)
	env.send(keyRunes("/"))
	if env.model().focus != focusSearch {
		t.Fatalf("expected search focus")
	}
	env.typeText("AGENT")
	m := env.model()
	if got := m.FilterState().Query; got != "AGENT" {
		t.Fatalf("expected raw query AGENT, got %q", got)
	}
	titles := cardTitles(m)
	if len(titles) != 1 || titles[0] != "Agent frameworks get workflow graphs" {
		t.Fatalf("unexpected cards %v", titles)
	}
	env.send(key(tea.KeyBackspace))
	if got := env.model().FilterState().Query; got != "AGEN" {
		t.Fatalf("expected backspace to commit, got %q", got)
	}
}

func TestSearchAcceptsSpaces(t *testing.T) {
	env := newTestEnv(t)
	env.send(keyRunes("/"))
	env.typeText("hybrid search")
	m := env.model()
	if got := m.FilterState().Query; got != "hybrid search" {
		t.Fatalf("expected query with space, got %q", got)
	}
	if titles := cardTitles(m); len(titles) != 1 || titles[0] != "Vector DB adds hybrid search" {
		t.Fatalf("unexpected cards %v", titles)
	}
	if m.modal.IsOpen() {
		t.Fatalf("expected space in search not to open a card")
	}
}

func TestNoMatchesRendersPlaceholder(t *testing.T) {
	env := newTestEnv(t)
	env.send(keyRunes("/"))
	env.typeText("zzzz")
	m := env.model()
	if len(m.list.Cards) != 0 {
		t.Fatalf("expected no cards, got %d", len(m.list.Cards))
	}
	view := env.harness.View()
	if strings.Count(view, feed.EmptyPlaceholder) != 1 {
		t.Fatalf("expected exactly one placeholder in view:\n%s", view)
	}
	if strings.Contains(view, "▌") {
		t.Fatalf("expected no card indicators in view")
	}
	env.send(key(tea.KeyEnter), key(tea.KeyEnter))
	if env.model().modal.IsOpen() {
		t.Fatalf("expected activation on an empty feed to be a no-op")
	}
}

func TestTagCycleSelectsResearch(t *testing.T) {
	env := newTestEnv(t)
	env.send(key(tea.KeyTab))
	if got := env.model().FilterState().Tag; got != "Models" {
		t.Fatalf("expected Models, got %q", got)
	}
	env.send(key(tea.KeyTab))
	m := env.model()
	if got := m.FilterState().Tag; got != "Research" {
		t.Fatalf("expected Research, got %q", got)
	}
	want := []string{"Open multimodal model hits new benchmark", "Research roundup: toolformer variants"}
	got := cardTitles(m)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
	env.send(key(tea.KeyShiftTab), key(tea.KeyShiftTab))
	if got := env.model().FilterState().Tag; got != "" {
		t.Fatalf("expected all tags after cycling back, got %q", got)
	}
}

func TestTagPromptResolvesInput(t *testing.T) {
	env := newTestEnv(t)
	env.send(keyRunes("#"))
	if env.model().focus != focusTag {
		t.Fatalf("expected tag prompt focus")
	}
	env.typeText("rsrch")
	env.send(key(tea.KeyEnter))
	m := env.model()
	if got := m.FilterState().Tag; got != "Research" {
		t.Fatalf("expected Research, got %q", got)
	}
	if m.focus != focusList {
		t.Fatalf("expected focus back on the list")
	}

	env.send(keyRunes("#"))
	env.send(key(tea.KeyCtrlU))
	env.typeText("qqqq")
	env.send(key(tea.KeyEnter))
	m = env.model()
	if m.errMsg == "" {
		t.Fatalf("expected an error for an unknown tag")
	}
	if got := m.FilterState().Tag; got != "Research" {
		t.Fatalf("expected tag unchanged, got %q", got)
	}
}

func TestClickAndKeyboardOpenTheSameRecord(t *testing.T) {
	env := newTestEnv(t)
	env.send(keyRunes("j"))
	env.send(key(tea.KeyEnter))
	m := env.model()
	if m.ModalState() != feed.ModalOpen {
		t.Fatalf("expected modal open after enter")
	}
	byEnter, _ := m.modal.Record()
	env.send(key(tea.KeyEsc))

	env.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	bySpace, ok := env.model().modal.Record()
	if !ok {
		t.Fatalf("expected modal open after space")
	}
	env.send(key(tea.KeyEsc))

	row := -1
	for r, idx := range env.model().buildFrame().cardAt {
		if idx == 1 && (row < 0 || r < row) {
			row = r
		}
	}
	if row < 0 {
		t.Fatalf("expected card 1 on screen")
	}
	env.send(leftClick(4, row))
	byClick, ok := env.model().modal.Record()
	if !ok {
		t.Fatalf("expected modal open after click")
	}
	if byEnter.Title != "Agent frameworks get workflow graphs" {
		t.Fatalf("unexpected record %q", byEnter.Title)
	}
	if byEnter.Title != bySpace.Title || byEnter.Title != byClick.Title {
		t.Fatalf("expected identical records, got %q %q %q", byEnter.Title, bySpace.Title, byClick.Title)
	}
}

func TestScrimClickClosesContentClickDoesNot(t *testing.T) {
	env := newTestEnv(t)
	env.send(key(tea.KeyEnter))
	m := env.model()
	layout, ok := m.layoutModal()
	if !ok {
		t.Fatalf("expected modal layout while open")
	}
	env.send(leftClick(layout.box.x+2, layout.box.y+2))
	if !env.model().modal.IsOpen() {
		t.Fatalf("expected click inside content to keep the modal open")
	}
	if layout.box.y == 0 {
		t.Fatalf("expected the box to leave room for the scrim")
	}
	env.send(leftClick(0, 0))
	m = env.model()
	if m.modal.IsOpen() || !m.modal.Hidden() {
		t.Fatalf("expected scrim click to close and hide the modal")
	}
}

func TestCloseControlClosesModal(t *testing.T) {
	env := newTestEnv(t)
	env.send(key(tea.KeyEnter))
	layout, _ := env.model().layoutModal()
	env.send(leftClick(layout.close.x+1, layout.close.y))
	if env.model().modal.IsOpen() {
		t.Fatalf("expected close control to close the modal")
	}
}

func TestModalCapturesKeys(t *testing.T) {
	env := newTestEnv(t)
	env.send(key(tea.KeyEnter))
	env.send(keyRunes("t"), keyRunes("j"))
	m := env.model()
	if m.theme.Name() != theme.Dark {
		t.Fatalf("expected theme untouched while modal open")
	}
	if m.list.Cursor != 0 {
		t.Fatalf("expected cursor untouched while modal open, got %d", m.list.Cursor)
	}
	env.send(keyRunes("q"))
	if env.model().modal.IsOpen() {
		t.Fatalf("expected q to close the modal")
	}
}

func TestModalViewShowsDetail(t *testing.T) {
	env := newTestEnv(t)
	env.send(key(tea.KeyEnter))
	view := env.harness.View()
	for _, want := range []string{"Open multimodal model hits new benchmark", closeControl, feed.DefaultImage, "Sep 18, 2025"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected modal view to contain %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "unavailable") {
		t.Fatalf("expected default image to load")
	}
	if env.model().image != imageLoaded {
		t.Fatalf("expected image loaded, got %d", env.model().image)
	}
}

func TestMissingImageFallsBackOnce(t *testing.T) {
	records := []feed.Record{{Title: "With image", Image: "missing.png", Date: "2025-01-01"}}
	env := newTestEnv(t, withRecords(records), withAssets(t.TempDir()))
	env.send(key(tea.KeyEnter))
	m := env.model()
	detail, ok := m.modal.Detail()
	if !ok {
		t.Fatalf("expected modal open")
	}
	if detail.Image != feed.DefaultImage {
		t.Fatalf("expected fallback to default image, got %q", detail.Image)
	}
	if m.image != imageBroken {
		t.Fatalf("expected broken default to settle, got %d", m.image)
	}
	if !m.modal.IsOpen() {
		t.Fatalf("expected modal to stay open")
	}
}

func TestStaleImageResultIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.send(key(tea.KeyEnter))
	m := env.model()
	seq := m.modal.Seq()
	env.send(imageResultMsg{seq: seq - 1, src: feed.DefaultImage, err: errors.New("old")})
	if m.image != imageLoaded {
		t.Fatalf("expected stale failure ignored, got %d", m.image)
	}
}

func TestThemeTogglePersists(t *testing.T) {
	env := newTestEnv(t)
	env.send(keyRunes("t"))
	m := env.model()
	if m.theme.Name() != theme.Light {
		t.Fatalf("expected light theme, got %s", m.theme.Name())
	}
	saved, ok, err := env.kv.Get(theme.StorageKey)
	if err != nil || !ok || saved != "light" {
		t.Fatalf("expected persisted light theme, got %q %v %v", saved, ok, err)
	}
	if !strings.Contains(env.harness.View(), "🌞") {
		t.Fatalf("expected light icon in header")
	}
}

func TestFooterShowsYear(t *testing.T) {
	env := newTestEnv(t)
	if !strings.Contains(env.harness.View(), "© 2026 LearnAZ") {
		t.Fatalf("expected footer year in view")
	}
}

func TestNarrowNavCollapses(t *testing.T) {
	env := newTestEnv(t, withSize(60, 40))
	view := env.harness.View()
	if !strings.Contains(view, "☰ menu (m)") || strings.Contains(view, "Prompt Lab") {
		t.Fatalf("expected collapsed nav:\n%s", view)
	}
	env.send(keyRunes("m"))
	if !env.model().nav.Expanded() {
		t.Fatalf("expected nav expanded")
	}
	if !strings.Contains(env.harness.View(), "Prompt Lab") {
		t.Fatalf("expected nav links after toggle")
	}
}

func TestCatalogReloadRerenders(t *testing.T) {
	env := newTestEnv(t)
	env.send(backendEventMsg{event: backend.Event{Path: "feed.yaml", Records: []feed.Record{{Title: "Only", Tags: []string{"New"}}}}})
	m := env.model()
	if titles := cardTitles(m); len(titles) != 1 || titles[0] != "Only" {
		t.Fatalf("unexpected cards %v", titles)
	}
	env.send(backendEventMsg{event: backend.Event{Path: "feed.yaml", Err: errors.New("bad yaml")}})
	m = env.model()
	if !strings.Contains(m.errMsg, "catalog reload failed") {
		t.Fatalf("expected reload error, got %q", m.errMsg)
	}
	if len(m.list.Cards) != 1 {
		t.Fatalf("expected previous snapshot kept, got %d cards", len(m.list.Cards))
	}
}

func TestCountersAnimateAfterResize(t *testing.T) {
	env := newTestEnv(t, withSize(0, 0))
	if env.model().counters.Started() {
		t.Fatalf("expected counters idle before the screen size is known")
	}
	env.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	if !env.model().counters.Started() || env.harness.PendingTimers() != 1 {
		t.Fatalf("expected animation to start with one frame pending, got %d", env.harness.PendingTimers())
	}
	env.send(tea.WindowSizeMsg{Width: 90, Height: 40})
	if env.harness.PendingTimers() != 1 {
		t.Fatalf("expected the animation to start only once")
	}
	env.now = testNow.Add(2 * time.Second)
	env.harness.FireTimers(env.now)
	if env.harness.PendingTimers() != 0 {
		t.Fatalf("expected animation to stop once done")
	}
	if !strings.Contains(env.model().statsLine(), "1,200") {
		t.Fatalf("expected final subscriber count, got %q", env.model().statsLine())
	}
}

func TestRemoteImageCountsAsLoaded(t *testing.T) {
	records := []feed.Record{{Title: "Remote", Image: "https://cdn.example.com/a.png", Date: "2025-01-01"}}
	env := newTestEnv(t, withRecords(records), withAssets(t.TempDir()))
	env.send(key(tea.KeyEnter))
	m := env.model()
	detail, _ := m.modal.Detail()
	if detail.Image != "https://cdn.example.com/a.png" {
		t.Fatalf("expected remote image kept, got %q", detail.Image)
	}
	if m.image != imageLoaded {
		t.Fatalf("expected remote image treated as loaded, got %d", m.image)
	}
	if err := loadImage(t.TempDir(), "data:image/png;base64,AAAA"); err != nil {
		t.Fatalf("expected data URI accepted, got %v", err)
	}
	if err := loadImage(t.TempDir(), "local.png"); err == nil {
		t.Fatalf("expected missing local file to fail")
	}
}

func TestPageDownScrollsByScreenOfCards(t *testing.T) {
	// 1 header + 2 stats + 3 filter + 3 bottom rows leave 6 rows: two cards.
	env := newTestEnv(t, withSize(100, 15))
	if got := env.model().cardArea(); got != 6 {
		t.Fatalf("expected 6 card rows, got %d", got)
	}
	env.send(key(tea.KeyPgDown))
	m := env.model()
	if m.list.Cursor != 2 {
		t.Fatalf("expected page down to card 2, got %d", m.list.Cursor)
	}
	view := env.harness.View()
	if !strings.Contains(view, "Policy: AI transparency rules drafted") || strings.Contains(view, "Open multimodal model hits new benchmark") {
		t.Fatalf("expected the viewport to follow the cursor:\n%s", view)
	}
	env.send(keyRunes("G"))
	if start, end := m.list.Window(m.cardArea()); start != 3 || end != 5 {
		t.Fatalf("expected last two cards on screen, got %d-%d", start, end)
	}
}
