package seq

import "bitbucket.org/Davydov/plasmid/enzyme"

// Annotations returns a copy of the annotations.
func (s *Sequence[B]) Annotations() []enzyme.Annotation {
	return append([]enzyme.Annotation(nil), s.annotations...)
}

// ClearAnnotations removes all annotations.
func (s *Sequence[B]) ClearAnnotations() {
	s.annotations = nil
}

// Annotate scans the sequence for the given enzymes and appends the
// sites found to the annotations. Existing annotations are kept.
func (s *Sequence[B]) Annotate(enzymes []*enzyme.Enzyme) []enzyme.Annotation {
	anns := enzyme.Scan(s.bases, enzymes)
	s.annotations = append(s.annotations, anns...)
	log.Debugf("Annotated %d restriction sites", len(anns))
	return anns
}

// AnnotateRestrictionEnzymes annotates the sites of every enzyme in
// the registry.
func (s *Sequence[B]) AnnotateRestrictionEnzymes() []enzyme.Annotation {
	return s.Annotate(enzyme.Registry())
}

// AddAnnotations appends annotations computed elsewhere, e.g. read
// back from a store.
func (s *Sequence[B]) AddAnnotations(anns ...enzyme.Annotation) {
	s.annotations = append(s.annotations, anns...)
}
