package docmirror

import "sort"

// Pipeline pairs the extractor and renderer used for one site family.
type Pipeline struct {
	Extractor Extractor
	Renderer  Renderer
}

// Registry maps parser tags to pipelines. It is the sole extension point
// for new site families: supporting a new generator means registering a new
// variant, not subclassing.
type Registry struct {
	pipelines map[Parser]Pipeline
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{pipelines: make(map[Parser]Pipeline)}
}

// Register adds a pipeline for a parser tag, replacing any existing entry.
func (r *Registry) Register(parser Parser, pipeline Pipeline) {
	r.pipelines[parser] = pipeline
}

// Get returns the pipeline for a parser tag.
func (r *Registry) Get(parser Parser) (Pipeline, bool) {
	p, ok := r.pipelines[parser]
	return p, ok
}

// Parsers returns the registered parser tags in sorted order.
func (r *Registry) Parsers() []Parser {
	parsers := make([]Parser, 0, len(r.pipelines))
	for p := range r.pipelines {
		parsers = append(parsers, p)
	}
	sort.Slice(parsers, func(i, j int) bool { return parsers[i] < parsers[j] })
	return parsers
}
