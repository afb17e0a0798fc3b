package detect

import "strings"

// DedupContext suppresses duplicate issue reports across detectors and
// across case variants. It carries two layers: a line scope cleared at the
// start of every line, and a document scope that persists for the whole
// analysis run and is only ever added to.
//
// Design decision: We register both the exact token and its lowercase form
// on every Add because:
// 1. "Recieve" and "recieve" on the same line must produce one issue
// 2. Lookups stay O(1) without per-query case folding of stored entries
// 3. Detectors never need to agree on a normalization convention
type DedupContext struct {
	lineScope map[string]struct{}
	docScope  map[string]struct{}
}

// NewDedupContext creates an empty context for one analysis run.
func NewDedupContext() *DedupContext {
	return &DedupContext{
		lineScope: make(map[string]struct{}),
		docScope:  make(map[string]struct{}),
	}
}

// ResetLine clears the line scope. The orchestrator calls this once per
// line; detectors must not.
func (d *DedupContext) ResetLine() {
	clear(d.lineScope)
}

// Seen reports whether tok (in exact or lowercase form) was already
// registered in either scope.
func (d *DedupContext) Seen(tok string) bool {
	if _, ok := d.lineScope[tok]; ok {
		return true
	}
	if _, ok := d.docScope[tok]; ok {
		return true
	}
	lower := strings.ToLower(tok)
	if lower != tok {
		if _, ok := d.lineScope[lower]; ok {
			return true
		}
		if _, ok := d.docScope[lower]; ok {
			return true
		}
	}
	return false
}

// SeenInLine reports whether tok was registered on the current line.
// Used where the policy is one report per line rather than per document.
func (d *DedupContext) SeenInLine(tok string) bool {
	if _, ok := d.lineScope[tok]; ok {
		return true
	}
	lower := strings.ToLower(tok)
	if lower != tok {
		if _, ok := d.lineScope[lower]; ok {
			return true
		}
	}
	return false
}

// Add registers tok (exact and lowercase forms) in both scopes.
func (d *DedupContext) Add(tok string) {
	d.lineScope[tok] = struct{}{}
	d.docScope[tok] = struct{}{}
	lower := strings.ToLower(tok)
	if lower != tok {
		d.lineScope[lower] = struct{}{}
		d.docScope[lower] = struct{}{}
	}
}

// AddLine registers tok in the line scope only.
func (d *DedupContext) AddLine(tok string) {
	d.lineScope[tok] = struct{}{}
	lower := strings.ToLower(tok)
	if lower != tok {
		d.lineScope[lower] = struct{}{}
	}
}
