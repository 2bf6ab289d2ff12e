/*
Package record implements generated record types and their instances.

A Type is an ordered, immutable list of field names. Its records hold exactly
one value per field; slots that were not filled at construction hold nil.
Field order is authoritative: it drives offset access, iteration, conversion
to slices and maps, and the display string.

	point, _ := record.NewType([]string{"x", "y"}, record.WithName("Point"))
	p, _ := point.New(1, 2)

	p.Get("x")           // 1, nil
	p.Get(1)             // 2, nil
	p.Get(2)             // nil, offset 2 too large for point(size:2)
	p.ValuesAt(0, record.Span(0, 3)) // [1 1 2 <nil> <nil>]
	p.String()           // #<point Point x=1, y=2>

Every failure is an *Error carrying a Kind, and matches the corresponding
sentinel (ErrUnknownMember, ErrIndexOutOfRange, ...) with errors.Is.

Records are plain values without internal locking; callers that share a
record across goroutines must synchronize mutation themselves.
*/
package record
