package diagcat

// ProducerState tracks the one-shot lazy initialization of a producer.
// The transition away from NotInitialized happens exactly once and never
// reverts.
type ProducerState int

const (
	NotInitialized ProducerState = iota
	Initialized
	FailedInitialization
)

// backend is the capability set shared by the three storage formats. The
// resolver picks one implementation per locale; nothing else inspects the
// concrete type.
type backend interface {
	initialize() error
	message(id ID) string
}

// unknownIDSource is implemented by the text backends, which retain raw
// ids that had no match in the compiled catalog.
type unknownIDSource interface {
	unknownIDs() []string
}

// Producer serves localized text for diagnostic ids, falling back to a
// caller-supplied default. Backend loading is lazy: the file is parsed on
// the first lookup and never again. A producer is owned by one consuming
// context and is not safe for concurrent use.
type Producer struct {
	cat        *Catalog
	backend    backend
	state      ProducerState
	debugNames bool
}

func newProducer(cat *Catalog, b backend, debugNames bool) *Producer {
	return &Producer{cat: cat, backend: b, debugNames: debugNames}
}

func (p *Producer) initializeIfNeeded() {
	if p.state != NotInitialized {
		return
	}
	if err := p.backend.initialize(); err != nil {
		p.state = FailedInitialization
		return
	}
	p.state = Initialized
}

// GetMessageOr returns the translation for id, or defaultMessage when
// initialization failed or no translation exists. With DebugNames set, a
// bracketed symbolic-name suffix is appended to translated output.
func (p *Producer) GetMessageOr(id ID, defaultMessage string) string {
	p.initializeIfNeeded()
	if p.state == FailedInitialization {
		return defaultMessage
	}
	msg := p.backend.message(id)
	if msg == "" {
		return defaultMessage
	}
	if p.debugNames {
		return msg + p.cat.DebugSuffix(id)
	}
	return msg
}

// ForEachAvailable forces full initialization and invokes fn for every id
// with a non-empty translation, in id order. Intended for validation
// tooling, not the hot diagnostic path.
func (p *Producer) ForEachAvailable(fn func(id ID, text string)) {
	p.initializeIfNeeded()
	if p.state == FailedInitialization {
		return
	}
	for i, n := 0, p.cat.Count(); i < n; i++ {
		if msg := p.backend.message(ID(i)); msg != "" {
			fn(ID(i), msg)
		}
	}
}

// State reports the initialization outcome.
func (p *Producer) State() ProducerState {
	return p.state
}

// UnknownIDs returns the raw ids found in the source file with no match in
// the compiled catalog. Empty until initialization; always empty for the
// serialized backend.
func (p *Producer) UnknownIDs() []string {
	if src, ok := p.backend.(unknownIDSource); ok {
		return src.unknownIDs()
	}
	return nil
}
