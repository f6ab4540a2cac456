package box

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Iron-Ham/pokebox/internal/catalog"
	boxerrors "github.com/Iron-Ham/pokebox/internal/errors"
)

// fakeClient serves a synthetic catalog: entry N lives at "ref/N" and is
// named "mon-N".
type fakeClient struct {
	total int

	listErr  error
	failRef  string
	entryErr error
	// before runs at the start of every Entry call.
	before func(ctx context.Context, ref string) error

	mu         sync.Mutex
	listCalls  []int
	entryCalls int
	inFlight   int32
	peak       int32
}

func (f *fakeClient) List(ctx context.Context, offset, limit int) (*catalog.Page, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, offset)
	f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	page := &catalog.Page{Count: f.total, Results: []catalog.Reference{}}
	for i := offset; i < offset+limit && i < f.total; i++ {
		n := i + 1
		page.Results = append(page.Results, catalog.Reference{
			Name: fmt.Sprintf("mon-%d", n),
			URL:  fmt.Sprintf("ref/%d", n),
		})
	}
	return page, nil
}

func (f *fakeClient) Entry(ctx context.Context, ref string) (*catalog.Entry, error) {
	cur := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		peak := atomic.LoadInt32(&f.peak)
		if cur <= peak || atomic.CompareAndSwapInt32(&f.peak, peak, cur) {
			break
		}
	}

	f.mu.Lock()
	f.entryCalls++
	f.mu.Unlock()

	if f.before != nil {
		if err := f.before(ctx, ref); err != nil {
			return nil, err
		}
	}
	if ref == f.failRef {
		return nil, f.entryErr
	}

	var n int
	if _, err := fmt.Sscanf(ref, "ref/%d", &n); err != nil {
		return nil, err
	}
	return &catalog.Entry{
		ID:        n,
		Name:      fmt.Sprintf("mon-%d", n),
		Types:     []catalog.TypeRef{{Name: "normal"}},
		Abilities: []catalog.Ability{},
	}, nil
}

func TestOffset(t *testing.T) {
	tests := []struct{ box, want int }{
		{1, 0},
		{2, 30},
		{3, 60},
		{30, 870},
	}
	for _, tt := range tests {
		if got := Offset(tt.box); got != tt.want {
			t.Errorf("Offset(%d) = %d, want %d", tt.box, got, tt.want)
		}
	}
}

func TestLoader_Load(t *testing.T) {
	client := &fakeClient{total: 1000}
	l := NewLoader(client, FixedLevel(42), LoaderOptions{})

	got, err := l.Load(context.Background(), 3)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff([]int{60}, client.listCalls); diff != "" {
		t.Errorf("list offsets mismatch (-want +got):\n%s", diff)
	}
	if len(got) != PageSize {
		t.Fatalf("len = %d, want %d", len(got), PageSize)
	}
	for i, e := range got {
		if e.ID != 61+i {
			t.Errorf("entry %d ID = %d, want %d", i, e.ID, 61+i)
		}
		if e.Level != 42 {
			t.Errorf("entry %d Level = %d, want 42", i, e.Level)
		}
	}
}

func TestLoader_Load_PartialLastPage(t *testing.T) {
	client := &fakeClient{total: 65}
	l := NewLoader(client, FixedLevel(1), LoaderOptions{})

	got, err := l.Load(context.Background(), 3)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
}

func TestLoader_Load_EmptyListing(t *testing.T) {
	client := &fakeClient{total: 10}
	l := NewLoader(client, FixedLevel(1), LoaderOptions{})

	got, err := l.Load(context.Background(), 2)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Load() = %v, want empty non-nil slice", got)
	}
	if client.entryCalls != 0 {
		t.Errorf("entryCalls = %d, want 0", client.entryCalls)
	}
}

func TestLoader_Load_InvalidBox(t *testing.T) {
	client := &fakeClient{total: 100}
	l := NewLoader(client, nil, LoaderOptions{})

	for _, box := range []int{0, -1} {
		_, err := l.Load(context.Background(), box)
		if !errors.Is(err, ErrInvalidBox) {
			t.Errorf("Load(%d) error = %v, want ErrInvalidBox", box, err)
		}
		if !errors.Is(err, boxerrors.ErrInvalidInput) {
			t.Errorf("Load(%d) error should be a validation error", box)
		}
	}
	if len(client.listCalls) != 0 {
		t.Errorf("listCalls = %v, want none", client.listCalls)
	}
}

// Completion order is forced to be the reverse of listing order: the call
// for entry i does not return until entry i+1 has returned.
func TestLoader_Load_PreservesListingOrder(t *testing.T) {
	const total = PageSize
	done := make([]chan struct{}, total+2)
	for i := range done {
		done[i] = make(chan struct{})
	}
	close(done[total+1])

	client := &fakeClient{total: total}
	client.before = func(ctx context.Context, ref string) error {
		var n int
		_, _ = fmt.Sscanf(ref, "ref/%d", &n)
		select {
		case <-done[n+1]:
		case <-ctx.Done():
			return ctx.Err()
		}
		close(done[n])
		return nil
	}
	l := NewLoader(client, FixedLevel(1), LoaderOptions{})

	got, err := l.Load(context.Background(), 1)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	names := make([]string, len(got))
	want := make([]string, total)
	for i := range got {
		names[i] = got[i].Name
		want[i] = fmt.Sprintf("mon-%d", i+1)
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Load_ListFailure(t *testing.T) {
	listErr := boxerrors.NewNetworkError("list", boxerrors.ErrUnexpectedStatus).WithStatusCode(503)
	client := &fakeClient{total: 100, listErr: listErr}
	l := NewLoader(client, FixedLevel(1), LoaderOptions{})

	got, err := l.Load(context.Background(), 1)
	if got != nil {
		t.Errorf("Load() = %v, want nil", got)
	}
	if !boxerrors.IsNetworkError(err) {
		t.Fatalf("Load() error = %v, want *NetworkError", err)
	}
	if client.entryCalls != 0 {
		t.Errorf("entryCalls = %d, want 0 after listing failure", client.entryCalls)
	}
}

func TestLoader_Load_OneDetailFails(t *testing.T) {
	detailErr := boxerrors.NewNetworkError("entry", boxerrors.ErrUnexpectedStatus).WithStatusCode(404)
	client := &fakeClient{total: 100, failRef: "ref/17", entryErr: detailErr}
	l := NewLoader(client, FixedLevel(1), LoaderOptions{})

	got, err := l.Load(context.Background(), 1)
	if got != nil {
		t.Errorf("Load() returned %d entries, want none", len(got))
	}
	var netErr *boxerrors.NetworkError
	if !errors.As(err, &netErr) || netErr.StatusCode != 404 {
		t.Fatalf("Load() error = %v, want the 404 detail failure", err)
	}
}

func TestLoader_Load_FailureCancelsSiblings(t *testing.T) {
	detailErr := boxerrors.NewNetworkError("entry", boxerrors.ErrRequestFailed)
	client := &fakeClient{total: 100, failRef: "ref/1", entryErr: detailErr}
	client.before = func(ctx context.Context, ref string) error {
		if ref == "ref/1" {
			return nil
		}
		<-ctx.Done()
		return ctx.Err()
	}
	l := NewLoader(client, FixedLevel(1), LoaderOptions{})

	_, err := l.Load(context.Background(), 1)
	if !errors.Is(err, boxerrors.ErrRequestFailed) {
		t.Fatalf("Load() error = %v, want the first failure", err)
	}
}

func TestLoader_Load_CanceledContext(t *testing.T) {
	client := &fakeClient{total: 100}
	client.before = func(ctx context.Context, ref string) error {
		<-ctx.Done()
		return ctx.Err()
	}
	l := NewLoader(client, FixedLevel(1), LoaderOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	go cancel()

	if _, err := l.Load(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestLoader_Load_MaxParallel(t *testing.T) {
	client := &fakeClient{total: 100}
	l := NewLoader(client, FixedLevel(1), LoaderOptions{MaxParallel: 4})

	if _, err := l.Load(context.Background(), 1); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if peak := atomic.LoadInt32(&client.peak); peak > 4 {
		t.Errorf("peak in-flight = %d, want <= 4", peak)
	}
}

func TestLoader_Load_NoCaching(t *testing.T) {
	client := &fakeClient{total: 100}
	l := NewLoader(client, FixedLevel(1), LoaderOptions{})

	for i := 0; i < 2; i++ {
		if _, err := l.Load(context.Background(), 2); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
	}
	if len(client.listCalls) != 2 {
		t.Errorf("listCalls = %d, want 2", len(client.listCalls))
	}
	if client.entryCalls != 2*PageSize {
		t.Errorf("entryCalls = %d, want %d", client.entryCalls, 2*PageSize)
	}
}

func TestLoader_Load_LevelsPerEntry(t *testing.T) {
	client := &fakeClient{total: 100}
	l := NewLoader(client, NewRandomLevels(7), LoaderOptions{})

	got, err := l.Load(context.Background(), 1)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	distinct := make(map[int]bool)
	for _, e := range got {
		if e.Level < MinLevel || e.Level > MaxLevel {
			t.Errorf("%s level %d out of range", e.Name, e.Level)
		}
		distinct[e.Level] = true
	}
	if len(distinct) < 2 {
		t.Errorf("expected independent levels, got %d distinct values", len(distinct))
	}
}

// chainedClient forces detail calls to complete strictly in listing order,
// or strictly in reverse when reverse is set.
func chainedClient(total int, reverse bool) *fakeClient {
	done := make([]chan struct{}, total+2)
	for i := range done {
		done[i] = make(chan struct{})
	}
	if reverse {
		close(done[total+1])
	} else {
		close(done[0])
	}

	client := &fakeClient{total: total}
	client.before = func(ctx context.Context, ref string) error {
		var n int
		_, _ = fmt.Sscanf(ref, "ref/%d", &n)
		wait := done[n-1]
		if reverse {
			wait = done[n+1]
		}
		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
		close(done[n])
		return nil
	}
	return client
}

func TestLoader_Load_SeededLevelsIgnoreCompletionOrder(t *testing.T) {
	levelsFor := func(reverse bool) []int {
		t.Helper()
		l := NewLoader(chainedClient(PageSize, reverse), NewRandomLevels(42), LoaderOptions{})
		got, err := l.Load(context.Background(), 1)
		if err != nil {
			t.Fatalf("Load(reverse=%v) error = %v", reverse, err)
		}
		levels := make([]int, len(got))
		for i, e := range got {
			levels[i] = e.Level
		}
		return levels
	}

	forward := levelsFor(false)
	reversed := levelsFor(true)
	if len(forward) != PageSize {
		t.Fatalf("len(levels) = %d, want %d", len(forward), PageSize)
	}
	if diff := cmp.Diff(forward, reversed); diff != "" {
		t.Errorf("same seed gave different levels by position (-forward +reversed):\n%s", diff)
	}

	src := NewRandomLevels(42)
	want := make([]int, PageSize)
	for i := range want {
		want[i] = src.Level()
	}
	if diff := cmp.Diff(want, forward); diff != "" {
		t.Errorf("levels not drawn in listing order (-want +got):\n%s", diff)
	}
}
