package cli

import tea "github.com/charmbracelet/bubbletea"

// viewStack is the navigation history. The last entry is on screen and
// the first is never popped.
type viewStack []View

func (s viewStack) top() View {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// setTop stores the model a view returned from Update.
func (s viewStack) setTop(m tea.Model) {
	if len(s) > 0 {
		s[len(s)-1] = m.(View)
	}
}

func (s *viewStack) push(v View) {
	*s = append(*s, v)
}

// pop drops the top view unless it is the root. It reports whether
// anything was removed.
func (s *viewStack) pop() bool {
	if len(*s) <= 1 {
		return false
	}
	*s = (*s)[:len(*s)-1]
	return true
}

// replace swaps the top view, or pushes v onto an empty stack.
func (s *viewStack) replace(v View) {
	if len(*s) == 0 {
		s.push(v)
		return
	}
	(*s)[len(*s)-1] = v
}

func (s *viewStack) reset(v View) {
	*s = viewStack{v}
}

// updateTop sends msg to the top view only.
func (s viewStack) updateTop(msg tea.Msg) tea.Cmd {
	v := s.top()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	s.setTop(updated)
	return cmd
}

// broadcast sends msg to every view, bottom first.
func (s viewStack) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range s {
		updated, cmd := v.Update(msg)
		s[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// titles returns the breadcrumb segments, bottom to top.
func (s viewStack) titles() []string {
	var out []string
	for _, v := range s {
		if t := v.Title(); t != "" {
			out = append(out, t)
		}
	}
	return out
}
