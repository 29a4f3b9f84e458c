package primitive

import "time"

type ParseOption func(*parseState)

type parseState struct {
	loc *time.Location
}

// InLocation sets the timezone applied to date and time values written
// without an offset. The default is UTC.
func InLocation(loc *time.Location) ParseOption {
	return func(ps *parseState) {
		if loc != nil {
			ps.loc = loc
		}
	}
}

// LocationFromOpts returns the location selected by opts.
func LocationFromOpts(opts ...ParseOption) *time.Location {
	ps := &parseState{loc: time.UTC}
	for _, opt := range opts {
		opt(ps)
	}
	return ps.loc
}
