// Package menu is the keyboard menu: a tree of letter keys whose leaves
// name actions, a few pinned keys reachable from anywhere, and a space
// action.
package menu

import (
	"fmt"
	"strings"
)

// Entry is a node of the tree. A leaf has only a Label. A branch has either
// Sub, or Jump: the absolute path it leads to instead.
type Entry struct {
	Label string
	Sub   Tree
	Jump  string
}

func (e Entry) leaf() bool { return e.Sub == nil && e.Jump == "" }

type Tree map[rune]Entry

// Leaf is shorthand for an action entry.
func Leaf(label string) Entry { return Entry{Label: label} }

// Branch is shorthand for a sub menu.
func Branch(label string, sub Tree) Entry { return Entry{Label: label, Sub: sub} }

// Shortcut is an entry that jumps to path.
func Shortcut(label, path string) Entry { return Entry{Label: label, Jump: path} }

const labelSize = 15

type Menu struct {
	root   Tree
	pos    Tree
	path   string
	pinned map[rune]string
	layout []string
	space  string

	mask   string
	labels map[rune]string

	translate [2]string
}

// New creates a menu positioned at its root. layout lists the rows of keys
// shown by Lines.
func New(root Tree, pinned map[rune]string, layout []string, space string) *Menu {
	return &Menu{root: root, pos: root, pinned: pinned, layout: layout, space: space}
}

// SetTranslation relabels keys for display only: src[i] is shown as dst[i].
// Navigation always uses the physical keys.
func (m *Menu) SetTranslation(src, dst string) { m.translate = [2]string{src, dst} }

// Display returns how k is shown to the user.
func (m *Menu) Display(k rune) rune {
	src, dst := []rune(m.translate[0]), []rune(m.translate[1])
	for i, r := range src {
		if r == k && i < len(dst) {
			return dst[i]
		}
	}
	return k
}

// Go presses key: it returns the label of what was hit and, if it is a
// branch, moves into it. An unbound key returns "".
func (m *Menu) Go(key rune) string { return m.lookup(key, true) }

// Peek returns what Go would without moving.
func (m *Menu) Peek(key rune) string { return m.lookup(key, false) }

func (m *Menu) lookup(key rune, navigate bool) string {
	if key == ' ' {
		return m.space
	}
	if label, ok := m.pinned[key]; ok {
		return label
	}
	e, ok := m.pos[key]
	if !ok {
		return ""
	}
	if navigate && !e.leaf() {
		if e.Sub != nil {
			m.pos = e.Sub
			m.path += string(key)
		} else {
			m.GoPath(e.Jump)
		}
	}
	return e.Label
}

// GoPath resets to the root and replays path. It stops at the first key
// that leads nowhere, keeping the valid prefix, and returns the label of
// the last entry reached.
func (m *Menu) GoPath(path string) string {
	m.pos, m.path = m.root, ""
	var last string
	for i, k := range path {
		label := m.Go(k)
		if label == "" {
			m.path = path[:i]
			return last
		}
		last = label
	}
	return last
}

func (m *Menu) Path() string { return m.path }

// Up leaves n levels; Up(len(Path())) returns to the root.
func (m *Menu) Up(n int) {
	n = min(n, len(m.path))
	m.GoPath(m.path[:len(m.path)-n])
}

// ShowTemporarily hides the regular labels of the keys in mask, showing
// labels for them instead (blank when missing). It returns a function
// restoring what was shown before.
func (m *Menu) ShowTemporarily(mask string, labels map[rune]string) (restore func()) {
	saved, savedLabels := m.mask, m.labels
	m.mask, m.labels = mask, labels
	return func() { m.mask, m.labels = saved, savedLabels }
}

// Masked is the current temporary key mask.
func (m *Menu) Masked() string { return m.mask }

func (m *Menu) shown(k rune) string {
	if strings.ContainsRune(m.mask, k) {
		return m.labels[k]
	}
	return m.Peek(k)
}

// Lines renders the menu as one text line per layout row plus the space
// action.
func (m *Menu) Lines() []string {
	var lines []string
	for _, row := range m.layout {
		var b strings.Builder
		b.WriteString("|")
		for _, k := range row {
			label := m.shown(k)
			if label == "" {
				b.WriteString(strings.Repeat(" ", len(" X: ")+labelSize))
			} else {
				if len(label) > labelSize {
					label = label[:labelSize]
				}
				fmt.Fprintf(&b, " %c: %-*s", m.Display(k), labelSize, label)
			}
			b.WriteString(" |")
		}
		lines = append(lines, b.String())
	}
	if m.space != "" && len(m.layout) > 0 {
		width := (len(" | X: ")+labelSize)*len(m.layout[0]) + 1
		lines = append(lines, fmt.Sprintf("%-*s|", width-1, "| SPACE: "+m.space))
	}
	return lines
}
