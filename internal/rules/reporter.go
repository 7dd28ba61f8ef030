package rules

// Sink receives diagnostics as they are produced.
type Sink interface {
	// Report delivers one diagnostic.
	Report(d Diagnostic)
	// Separate marks the end of a group of diagnostics for one file.
	Separate()
}

// Reporter tracks the pass/fail state of a run and the current position,
// and turns rule violations into diagnostics on its Sink.
type Reporter struct {
	sink   Sink
	recipe string
	file   string
	line   int
	ok     bool
	dirty  bool
}

// NewReporter creates a reporter that writes to sink.
func NewReporter(sink Sink) *Reporter {
	return &Reporter{sink: sink, ok: true}
}

// SetRecipe sets the recipe directory attached to subsequent diagnostics.
func (r *Reporter) SetRecipe(dir string) {
	r.recipe = dir
}

// SwitchFile makes name the current file and rewinds to its first line.
// A separator is emitted when the previous file had a violation.
func (r *Reporter) SwitchFile(name string) {
	r.file = name
	r.line = 0
	if r.dirty {
		r.sink.Separate()
	}
	r.dirty = false
}

// SetLine sets the 0-based index of the current line.
func (r *Reporter) SetLine(i int) {
	r.line = i
}

// File returns the current file name.
func (r *Reporter) File() string {
	return r.file
}

// Violation records a failing rule at the current line.
func (r *Reporter) Violation(code Code, message string) {
	r.ok = false
	r.dirty = true
	r.sink.Report(Diagnostic{
		Recipe:   r.recipe,
		File:     r.file,
		Line:     r.line + 1,
		Code:     code,
		Message:  message,
		Severity: SeverityError,
	})
}

// Advise records an advisory for file. It never affects Passed.
func (r *Reporter) Advise(file string, code Code, message string) {
	r.sink.Report(Diagnostic{
		Recipe:   r.recipe,
		File:     file,
		Code:     code,
		Message:  message,
		Severity: SeverityWarning,
	})
}

// Passed reports whether no violation has been recorded.
func (r *Reporter) Passed() bool {
	return r.ok
}

// Collector is a Sink that keeps every diagnostic in memory.
type Collector struct {
	Diagnostics []Diagnostic
	Separators  int
}

// Report implements Sink.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Separate implements Sink.
func (c *Collector) Separate() {
	c.Separators++
}

// Violations returns only the failing diagnostics.
func (c *Collector) Violations() []Diagnostic {
	var out []Diagnostic
	for _, d := range c.Diagnostics {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// Tee fans diagnostics out to several sinks.
type Tee []Sink

// Report implements Sink.
func (t Tee) Report(d Diagnostic) {
	for _, s := range t {
		s.Report(d)
	}
}

// Separate implements Sink.
func (t Tee) Separate() {
	for _, s := range t {
		s.Separate()
	}
}
