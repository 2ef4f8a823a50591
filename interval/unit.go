package interval

// Unit identifies one of the time units understood by the interval parsers
// and converters. The constants are declared in ascending granularity order,
// so units compare directly: UnitSecond < UnitDay.
//
// The constants and the name table live in unit_gen.go; regenerate with
// `go run ./internal/cmd/generate` after changing the unit list.
type Unit uint8

// Finer reports whether u is a finer granularity than o.
func (u Unit) Finer(o Unit) bool {
	return u < o
}

// Coarser reports whether u is a coarser granularity than o.
func (u Unit) Coarser(o Unit) bool {
	return u > o
}
