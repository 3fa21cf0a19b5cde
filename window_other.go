//go:build !(((linux && !android) || freebsd || openbsd) && !nox11)

package decor

import "gioui.org/io/event"

func (w *Window) viewEvent(event.Event) {}
