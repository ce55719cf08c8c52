package srt

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSubtitleBlock(t *testing.T) {
	tests := []struct {
		name   string
		sub    Subtitle
		strict bool
		want   string
	}{
		{
			name: "plain block",
			sub: Subtitle{
				Index:   1,
				Start:   time.Second,
				End:     2 * time.Second,
				Content: "Hello",
			},
			strict: true,
			want:   "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n",
		},
		{
			name: "proprietary text joins the timing line",
			sub: Subtitle{
				Index:       3,
				Start:       time.Second,
				End:         2 * time.Second,
				Content:     "Hello",
				Proprietary: "X1:100 Y1:100",
			},
			strict: true,
			want:   "3\n00:00:01,000 --> 00:00:02,000 X1:100 Y1:100\nHello\n\n",
		},
		{
			name: "strict strips blank content lines",
			sub: Subtitle{
				Index:   1,
				Start:   time.Second,
				End:     2 * time.Second,
				Content: "\nfoo\n\nbar\n",
			},
			strict: true,
			want:   "1\n00:00:01,000 --> 00:00:02,000\nfoo\nbar\n\n",
		},
		{
			name: "non-strict keeps blank content lines",
			sub: Subtitle{
				Index:   1,
				Start:   time.Second,
				End:     2 * time.Second,
				Content: "foo\n\nbar",
			},
			strict: false,
			want:   "1\n00:00:01,000 --> 00:00:02,000\nfoo\n\nbar\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.Block(tt.strict); got != tt.want {
				t.Errorf("Block(%v) = %q, want %q", tt.strict, got, tt.want)
			}
		})
	}
}

func TestSubtitleEquality(t *testing.T) {
	base := Subtitle{
		Index:       1,
		Start:       time.Second,
		End:         2 * time.Second,
		Content:     "Hello",
		Proprietary: "meta",
	}

	same := base
	if same != base {
		t.Error("identical subtitles compare unequal")
	}

	variants := []Subtitle{base, base, base, base, base}
	variants[0].Index = 2
	variants[1].Start = 3 * time.Second
	variants[2].End = 4 * time.Second
	variants[3].Content = "Hello!"
	variants[4].Proprietary = ""
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d compares equal to base", i)
		}
	}

	// comparable structs work as map keys, covering the hash contract
	seen := map[Subtitle]bool{base: true}
	if !seen[same] {
		t.Error("equal subtitle not found as map key")
	}
}

func TestSubtitleLess(t *testing.T) {
	early := &Subtitle{Start: time.Second}
	late := &Subtitle{Start: 2 * time.Second}

	if !early.Less(late) {
		t.Error("earlier subtitle not ordered before later one")
	}
	if late.Less(early) {
		t.Error("later subtitle ordered before earlier one")
	}
	if early.Less(early) {
		t.Error("subtitle ordered before itself")
	}
}

func TestMakeLegalContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "already legal",
			content: "foo\nbar",
			want:    "foo\nbar",
		},
		{
			name:    "interior and surrounding blank lines",
			content: "\nfoo\n\nbar\n",
			want:    "foo\nbar",
		},
		{
			name:    "only blank lines",
			content: "\n\n\n",
			want:    "",
		},
		{
			name:    "empty",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeLegalContent(tt.content)
			if got != tt.want {
				t.Errorf("MakeLegalContent(%q) = %q, want %q", tt.content, got, tt.want)
			}
			if again := MakeLegalContent(got); again != got {
				t.Errorf("MakeLegalContent not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestMakeLegalContentLogsChanges(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	MakeLegalContent("legal\ncontent")
	if n := logs.Len(); n != 0 {
		t.Errorf("unchanged content logged %d entries, want 0", n)
	}

	MakeLegalContent("\nfoo\n\nbar\n")
	entries := logs.FilterMessage("legalized content").All()
	if len(entries) != 1 {
		t.Fatalf("changed content logged %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["original"] != "\nfoo\n\nbar\n" || fields["legalized"] != "foo\nbar" {
		t.Errorf("unexpected diagnostic fields: %v", fields)
	}
}
