// Package browser is an interactive raw-mode file picker. It renders a
// wrapping grid of directory entries, tracks a multi-select set and
// supports directory traversal confined to a session root. Raw-mode
// acquisition and release, keystroke decoding and in-place frame redraw
// are delegated to bubbletea, which restores the terminal on every exit
// path.
package browser

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	errs "github.com/caphefalumi/Canvas-CLI-sub001/internal/errors"
	"github.com/caphefalumi/Canvas-CLI-sub001/internal/log"
)

type options struct {
	lister  Lister
	exts    map[string]bool
	pattern string
	filter  glob.Glob
	watch   bool
	input   io.Reader
	output  io.Writer
}

// Option configures a picking session.
type Option func(*options)

// WithExtensions restricts the listing to files whose extension is in the
// allow-list (case-insensitive, with or without the leading dot). Filtered
// files are omitted entirely, so select-all cannot pick them either.
func WithExtensions(exts ...string) Option {
	return func(o *options) {
		if len(exts) == 0 {
			return
		}
		o.exts = make(map[string]bool, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			o.exts[ext] = true
		}
	}
}

// WithGlobFilter restricts listed files to names matching pattern
// (e.g. "report_*"). Directories are never filtered.
func WithGlobFilter(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithLister replaces the OS-backed directory lister.
func WithLister(l Lister) Option {
	return func(o *options) {
		o.lister = l
	}
}

// WithWatch reloads the current listing automatically when the directory
// changes on disk, same effect as pressing r.
func WithWatch() Option {
	return func(o *options) {
		o.watch = true
	}
}

// WithInput overrides the keystroke source, mainly for tests.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithOutput overrides the frame sink, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// allows reports whether a file name passes the extension allow-list and
// the glob filter. Only files are filtered; directories always pass.
func (o options) allows(name string) bool {
	if o.exts != nil && !o.exts[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	if o.filter != nil && !o.filter.Match(name) {
		return false
	}
	return true
}

// Pick runs an exclusive keyboard session rooted at root and returns the
// selected absolute file paths in selection order. An empty slice means
// the user exited with nothing selected.
func Pick(root string, opts ...Option) ([]string, error) {
	o := options{lister: osLister{}}
	for _, opt := range opts {
		opt(&o)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errs.NewPathError("browser: resolve root", root, errs.InvalidRoot, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return nil, errs.NewPathError("browser: root is not a directory", abs, errs.InvalidRoot, err)
	}
	if o.pattern != "" {
		g, err := glob.Compile(o.pattern)
		if err != nil {
			return nil, errs.NewPatternError("browser: bad filter pattern", o.pattern, err)
		}
		o.filter = g
	}

	m := newModel(abs, o)

	if o.watch {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			// Watching is best-effort; the r key still reloads manually.
			log.Debugf("browser: watcher unavailable: %v", err)
		} else {
			m.watcher = w
			if err := w.Add(abs); err != nil {
				log.Debugf("browser: watch %s: %v", abs, err)
			}
			defer w.Close()
		}
	}

	var progOpts []tea.ProgramOption
	if o.input != nil {
		progOpts = append(progOpts, tea.WithInput(o.input))
	}
	if o.output != nil {
		progOpts = append(progOpts, tea.WithOutput(o.output))
	}
	p := tea.NewProgram(m, progOpts...)

	if m.watcher != nil {
		go func() {
			for range m.watcher.Events {
				p.Send(reloadMsg{})
			}
		}()
	}

	res, err := p.Run()
	if err != nil {
		return nil, errs.Wrap(err, "browser")
	}
	return res.(*model).sel.Paths(), nil
}
