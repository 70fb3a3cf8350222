package ledger

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"pkg.jsn.cam/txrecord/pkg/txrecord"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		content        string
		chunkSize      int
		wantChunks     int
		wantTotalLines int
	}{
		{"empty input", "", 3, 0, 0},
		{"single line", "R", 3, 1, 1},
		{"exact multiple", "R\n+1.00\nW\nR\n-1.00\nW\n", 3, 2, 6},
		{"remainder chunk", "R\n+1.00\n+2.00\nW\n", 3, 2, 4},
		{"one line per chunk", "R\nW\n", 1, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			chunks, err := Chunk(strings.NewReader(tt.content), tt.chunkSize)
			if err != nil {
				t.Fatalf("Chunk() returned error: %v", err)
			}

			if len(chunks) != tt.wantChunks {
				t.Errorf("Got %d chunks, want %d", len(chunks), tt.wantChunks)
			}

			totalLines := 0
			for _, chunk := range chunks {
				if len(chunk) > tt.chunkSize {
					t.Errorf("Chunk has %d lines, limit is %d", len(chunk), tt.chunkSize)
				}
				totalLines += len(chunk)
			}
			if totalLines != tt.wantTotalLines {
				t.Errorf("Got %d total lines, want %d", totalLines, tt.wantTotalLines)
			}
		})
	}
}

func TestChunk_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		if _, err := Chunk(strings.NewReader("R\nW\n"), size); !errors.Is(err, ErrInvalidChunkSize) {
			t.Errorf("Chunk(size=%d) error = %v, want ErrInvalidChunkSize", size, err)
		}
	}
}

func TestShuffle(t *testing.T) {
	t.Parallel()

	pairs := []KeyValue{
		{Key: "Vlad", Value: "1"},
		{Key: "Frank", Value: "2"},
		{Key: "Vlad", Value: "3"},
	}
	got := Shuffle(pairs)
	want := map[string][]string{
		"Vlad":  {"1", "3"},
		"Frank": {"2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Shuffle() = %v, want %v", got, want)
	}
}

func TestRun_Balance(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Name: "Vlad", Reader: strings.NewReader("R\n+250.50\nW\nR\n-10.00\nW\n")},
		{Name: "Frank", Reader: strings.NewReader("R\n-100.25\n+0.25\nW\n")},
	}

	got, err := Run(records, 2, BalanceWorker{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []KeyValue{
		{Key: "Frank", Value: "-100.00"},
		{Key: "Vlad", Value: "240.50"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Run() = %v, want %v", got, want)
	}
}

func TestRun_Flow(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Name: "a", Reader: strings.NewReader("R\n+10.00\n-4.00\n+0.00\nW\n")},
		{Name: "b", Reader: strings.NewReader("R\n-1.50\nW\n")},
	}

	got, err := Run(records, 10, FlowWorker{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []KeyValue{
		{Key: DepositsKey, Value: "10.00"},
		{Key: WithdrawalsKey, Value: "-5.50"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Run() = %v, want %v", got, want)
	}
}

func TestRun_SectionCount(t *testing.T) {
	t.Parallel()

	doc := txrecord.New(txrecord.NewSeededSource(3)).Generate()
	sections, err := txrecord.Parse(strings.NewReader(string(doc)))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	got, err := Run([]Record{{Name: "gen", Reader: strings.NewReader(string(doc))}}, 4, SectionCountWorker{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(got) != 1 || got[0].Value != strconv.Itoa(len(sections)) {
		t.Errorf("Run() = %v, want %d sections", got, len(sections))
	}
}

func TestRun_MapError(t *testing.T) {
	t.Parallel()

	records := []Record{{Name: "bad", Reader: strings.NewReader("R\nnot a number\nW\n")}}
	_, err := Run(records, 5, BalanceWorker{})
	if !errors.Is(err, ErrMapFailed) {
		t.Fatalf("Run() error = %v, want ErrMapFailed", err)
	}
	if !errors.Is(err, txrecord.ErrInvalidTransaction) {
		t.Errorf("Run() error = %v, want it to wrap ErrInvalidTransaction", err)
	}
}

func TestGetWorker(t *testing.T) {
	t.Parallel()

	for _, name := range ListWorkers() {
		w, err := GetWorker(name)
		if err != nil {
			t.Errorf("GetWorker(%q) error: %v", name, err)
			continue
		}
		if w.Description() == "" {
			t.Errorf("worker %q has no description", name)
		}
	}

	if _, err := GetWorker("nope"); !errors.Is(err, ErrUnknownWorker) {
		t.Errorf("GetWorker(nope) error = %v, want ErrUnknownWorker", err)
	}
}
