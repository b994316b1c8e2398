package pipeline

import "github.com/wflang/docvet/internal/core/domain"

// phase is the disposition of the layer state machine. The machine starts
// pending at the lowest requested layer and terminates in passed or failed.
type phase int

const (
	phasePending phase = iota
	phasePassed
	phaseFailed
)

// machine advances one file through the ordered layer sequence, applying
// the expected-failure policy at each layer. It is pure state transition
// logic with no knowledge of process invocation.
type machine struct {
	entry        domain.ManifestEntry
	match        func(diagnostic string) bool
	phase        phase
	layer        domain.Layer
	diagnostic   string
	layersPassed []domain.Layer
}

func newMachine(entry domain.ManifestEntry, match func(string) bool) *machine {
	return &machine{entry: entry, match: match}
}

// observe applies the transition rule for one invoked layer:
//
//   - success records the layer and keeps the machine pending;
//   - a lint failure is recorded and never terminal, lint is a best-effort
//     signal only;
//   - a failure expected at this layer with a matching diagnostic is the
//     passing condition for a negative example and terminates in passed;
//   - any other failure terminates in failed, capturing the diagnostic.
func (m *machine) observe(layer domain.Layer, ok bool, diagnostic string) {
	m.layer = layer

	if ok || layer == domain.LayerLint {
		m.layersPassed = append(m.layersPassed, layer)
		return
	}

	if m.entry.IsErrorExample() && m.reconcilesAt(layer) && m.match(diagnostic) {
		m.phase = phasePassed
		return
	}

	m.phase = phaseFailed
	m.diagnostic = diagnostic
}

// reconcilesAt reports whether a failure at the given layer may be matched
// against the expected-error pattern. Negative examples may legitimately
// surface their error at runtime even when the declared failure layer is a
// static check, so the execute layer always reconciles.
func (m *machine) reconcilesAt(layer domain.Layer) bool {
	return layer == domain.LayerExecute || m.entry.ExpectedFailureLayer == layer
}

// finish resolves a machine that walked off the end of the layer sequence.
func (m *machine) finish() {
	if m.phase == phasePending {
		m.phase = phasePassed
	}
}

func (m *machine) passed() bool {
	return m.phase == phasePassed
}

func (m *machine) done() bool {
	return m.phase != phasePending
}
