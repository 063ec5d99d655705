package race

// ID names one member of a linked block. IDs are plain symbolic tags: they
// carry no payload, compare by value, and render as themselves. Within a
// single block every ID must be unique and non-empty; Link enforces both at
// construction time.
//
// Generated block packages define their own identifier types on top of ID
// (one named constant per member) so that callers can switch on the winner
// without string literals.
type ID string

// String returns the identifier's textual form.
func (id ID) String() string {
	return string(id)
}
