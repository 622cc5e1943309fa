package reflex

// Address is a sink that accepts actions. Views bind addresses to key
// presses; the driver owns the root address.
type Address[A any] func(A)

// Send delivers action to the address. Sending to a nil address is a no-op.
func (a Address[A]) Send(action A) {
	if a == nil {
		return
	}
	a(action)
}

// Forward derives an address that tags actions before handing them to addr.
func Forward[A, B any](addr Address[B], tag func(A) B) Address[A] {
	if addr == nil {
		return nil
	}
	return func(action A) {
		addr(tag(action))
	}
}
