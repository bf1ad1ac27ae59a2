// Package testdiff provides a unified-diff test helper, adapted from an
// internal diff renderer that used go-difflib's SequenceMatcher. It exists
// to give round-trip and golden-file tests a readable failure message
// instead of a wall of two giant strings.
package testdiff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffLine is one line of a hunk, tagged by how it differs.
type DiffLine struct {
	Type    string // "add", "remove", "context"
	LineNum int
	Content string
}

// DiffHunk is a contiguous region of change with surrounding context.
type DiffHunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []DiffLine
}

// UnifiedDiff is the full diff between two texts.
type UnifiedDiff struct {
	Hunks   []DiffHunk
	Added   int
	Removed int
}

const contextLines = 3

// Diff computes a unified diff between oldText and newText, line by line.
func Diff(oldText, newText string) *UnifiedDiff {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	hunks := computeHunks(oldLines, newLines)

	added, removed := 0, 0
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Type {
			case "add":
				added++
			case "remove":
				removed++
			}
		}
	}

	return &UnifiedDiff{Hunks: hunks, Added: added, Removed: removed}
}

func computeHunks(oldLines, newLines []string) []DiffHunk {
	matcher := difflib.NewMatcher(oldLines, newLines)
	opcodes := matcher.GetOpCodes()

	var hunks []DiffHunk
	for _, opcode := range opcodes {
		tag := string(opcode.Tag)
		if tag == "e" {
			continue
		}
		oldStart, oldEnd := opcode.I1, opcode.I2
		newStart, newEnd := opcode.J1, opcode.J2

		hunkStart := max(0, oldStart-contextLines)
		hunkEnd := min(len(oldLines), oldEnd+contextLines)
		newHunkStart := max(0, newStart-contextLines)
		newHunkEnd := min(len(newLines), newEnd+contextLines)

		hunk := DiffHunk{
			OldStart: hunkStart + 1,
			OldCount: hunkEnd - hunkStart,
			NewStart: newHunkStart + 1,
			NewCount: newHunkEnd - newHunkStart,
		}

		for i := hunkStart; i < oldStart; i++ {
			hunk.Lines = append(hunk.Lines, DiffLine{Type: "context", LineNum: i + 1, Content: oldLines[i]})
		}

		switch tag {
		case "r":
			for i := oldStart; i < oldEnd; i++ {
				hunk.Lines = append(hunk.Lines, DiffLine{Type: "remove", LineNum: i + 1, Content: oldLines[i]})
			}
			for i := newStart; i < newEnd; i++ {
				hunk.Lines = append(hunk.Lines, DiffLine{Type: "add", LineNum: i + 1, Content: newLines[i]})
			}
		case "d":
			for i := oldStart; i < oldEnd; i++ {
				hunk.Lines = append(hunk.Lines, DiffLine{Type: "remove", LineNum: i + 1, Content: oldLines[i]})
			}
		case "i":
			for i := newStart; i < newEnd; i++ {
				hunk.Lines = append(hunk.Lines, DiffLine{Type: "add", LineNum: i + 1, Content: newLines[i]})
			}
		}

		for i := oldEnd; i < hunkEnd; i++ {
			hunk.Lines = append(hunk.Lines, DiffLine{Type: "context", LineNum: i + 1, Content: oldLines[i]})
		}

		hunks = append(hunks, hunk)
	}
	return hunks
}

// FormatUnified renders a UnifiedDiff in the familiar "---/+++/@@" text form.
func FormatUnified(d *UnifiedDiff) string {
	var buf strings.Builder
	buf.WriteString("--- want\n+++ got\n")
	for _, hunk := range d.Hunks {
		fmt.Fprintf(&buf, "@@ -%d,%d +%d,%d @@\n", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
		for _, line := range hunk.Lines {
			switch line.Type {
			case "remove":
				fmt.Fprintf(&buf, "-%s\n", line.Content)
			case "add":
				fmt.Fprintf(&buf, "+%s\n", line.Content)
			case "context":
				fmt.Fprintf(&buf, " %s\n", line.Content)
			}
		}
	}
	return buf.String()
}

// RequireEqual fails t with a unified diff if want != got. Intended for
// round-trip/idempotence assertions where a raw string mismatch is hard to
// read (e.g. Normalize(Normalize(x)) == Normalize(x)).
func RequireEqual(t interface{ Fatalf(string, ...any) }, want, got string) {
	if want == got {
		return
	}
	d := Diff(want, got)
	t.Fatalf("text mismatch:\n%s", FormatUnified(d))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
