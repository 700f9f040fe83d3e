// internal/platform/ui/raw_presenter_test.go
package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"crackx/internal/testutil"
)

func TestRawPresenter(t *testing.T) {
	t.Run("cracked lines are plain and parseable", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewRawPresenterTo(&buf)

		p.Cracked("alice", "cat123")

		testutil.AssertEqual(t, buf.String(), "cracked alice : cat123\n", "line format")
	})

	t.Run("finish bounds the unsolved preview", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewRawPresenterTo(&buf)

		unsolved := make([]Unsolved, 9)
		for i := range unsolved {
			unsolved[i] = Unsolved{Identifier: "user", Digest: "ffff"}
		}
		p.Finish(RunStats{Solved: 1, Total: 10, Elapsed: time.Second, Unsolved: unsolved})

		out := buf.String()
		testutil.AssertContains(t, out, "solved=1 total=10", "summary counts")
		testutil.AssertEqual(t, strings.Count(out, "unsolved user"), maxUnsolvedShown, "preview capped")
		testutil.AssertContains(t, out, "unsolved more=3", "overflow count")
	})
}

func TestForMode(t *testing.T) {
	if _, ok := ForMode(false, true).(*NoopPresenter); !ok {
		t.Error("quiet should select the noop presenter")
	}
	if _, ok := ForMode(true, false).(*RawPresenter); !ok {
		t.Error("raw should select the raw presenter")
	}
	if _, ok := ForMode(true, true).(*NoopPresenter); !ok {
		t.Error("quiet should win over raw")
	}
	if _, ok := ForMode(false, false).(*PTermPresenter); !ok {
		t.Error("default should select the pterm presenter")
	}
}
