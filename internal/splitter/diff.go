package splitter

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// lineDelta compares two documents line by line. Each line is encoded as a
// single rune, so rune counts in the diff are line counts.
func lineDelta(before, after []string) (added, removed int) {
	dmp := diffmatchpatch.New()
	a, b, _ := dmp.DiffLinesToRunes(joinLines(before), joinLines(after))

	for _, d := range dmp.DiffMainRunes(a, b, false) {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return added, removed
}

// changeStatus classifies a rendered document against the existing file.
// existing is nil when there is no file yet.
func changeStatus(existing, rendered []string) (ChangeStatus, int, int) {
	if existing == nil {
		return StatusCreated, len(rendered), 0
	}
	added, removed := lineDelta(existing, rendered)
	if added == 0 && removed == 0 {
		return StatusUnchanged, 0, 0
	}
	return StatusUpdated, added, removed
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
