//go:build !windows

package table

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyResize subscribes ch to terminal resize notifications.
func notifyResize(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGWINCH)
}
