package graphql

import "context"

// Stream iterates a query's fetch loop page by page.
//
// For a tree with at most one pagination dimension every Next call performs
// one round trip and returns an accumulator holding only that page's rows,
// so large result sets can be consumed incrementally. With several
// pagination dimensions the rows of a single round trip are not a
// consistent snapshot, so the first Next call drains the whole loop and
// returns the fully merged result.
type Stream struct {
	query     *Query
	transport Transport
	progress  *mergeProgress
	multi     bool
	err       error
}

// HasNext reports whether another Next call will produce a result.
func (s *Stream) HasNext() bool {
	return s.err == nil && s.query.NeedsFetch()
}

// Next returns the next merged result. It returns ErrNoMorePages once the
// tree is fully fetched, and repeats any earlier failure on every later
// call.
func (s *Stream) Next(ctx context.Context) (map[string]any, error) {
	if s.err != nil {
		return nil, s.err
	}

	if !s.query.NeedsFetch() {
		return nil, ErrNoMorePages
	}

	output := make(map[string]any)

	if s.multi {
		for s.query.NeedsFetch() {
			if err := s.query.fetchPage(ctx, s.transport, output, s.progress); err != nil {
				s.err = err

				return nil, err
			}
		}

		return output, nil
	}

	if err := s.query.fetchPage(ctx, s.transport, output, s.progress); err != nil {
		s.err = err

		return nil, err
	}

	return output, nil
}

// All drains every remaining page and returns them merged into one
// accumulator.
func (s *Stream) All(ctx context.Context) (map[string]any, error) {
	if s.err != nil {
		return nil, s.err
	}

	output := make(map[string]any)

	for s.query.NeedsFetch() {
		if err := s.query.fetchPage(ctx, s.transport, output, s.progress); err != nil {
			s.err = err

			return nil, err
		}
	}

	return output, nil
}
