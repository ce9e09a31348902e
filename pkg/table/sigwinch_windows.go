//go:build windows

package table

import "os"

// Windows has no SIGWINCH; live redraw degrades to a static print.
func notifyResize(ch chan<- os.Signal) {}
