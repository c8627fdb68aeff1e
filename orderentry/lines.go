package orderentry

import (
	"github.com/goliatone/go-order-entry-cache/directory"
)

// OrderLine is one line of an open order. Product may still be pending
// resolution. A nil UnitPrice means the operator has not priced the line;
// resolution seeds it from the product's list price exactly once, and a
// price the operator typed is never overwritten.
type OrderLine struct {
	Product   ResolutionState
	Quantity  int
	UnitPrice *directory.Amount
}

// Subtotal derives quantity times unit price. Never stored.
func (l OrderLine) Subtotal() directory.Amount {
	if l.UnitPrice == nil || l.Quantity <= 0 {
		return 0
	}
	return l.UnitPrice.MulQty(l.Quantity)
}

// LineSet is the ordered line collection of one open order. Every operation
// is a pure transformation returning a new set backed by a fresh slice, so
// successive states never alias. A set always holds at least one line.
type LineSet struct {
	lines []OrderLine
}

// NewLineSet returns a set holding a single blank line.
func NewLineSet() LineSet {
	return LineSet{lines: []OrderLine{blankLine()}}
}

func blankLine() OrderLine {
	return OrderLine{Quantity: 1}
}

func (s LineSet) clone() LineSet {
	dup := make([]OrderLine, len(s.lines))
	copy(dup, s.lines)
	return LineSet{lines: dup}
}

// Len returns the number of lines.
func (s LineSet) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the lines in insertion order.
func (s LineSet) Lines() []OrderLine {
	dup := make([]OrderLine, len(s.lines))
	copy(dup, s.lines)
	return dup
}

// Line returns the line at index i.
func (s LineSet) Line(i int) (OrderLine, bool) {
	if i < 0 || i >= len(s.lines) {
		return OrderLine{}, false
	}
	return s.lines[i], true
}

// AddLine appends a blank line.
func (s LineSet) AddLine() LineSet {
	next := s.clone()
	next.lines = append(next.lines, blankLine())
	return next
}

// RemoveLine removes the line at i. Removing the only remaining line is a
// no-op; an order always keeps at least one line.
func (s LineSet) RemoveLine(i int) LineSet {
	if i < 0 || i >= len(s.lines) || len(s.lines) == 1 {
		return s
	}
	next := LineSet{lines: make([]OrderLine, 0, len(s.lines)-1)}
	next.lines = append(next.lines, s.lines[:i]...)
	next.lines = append(next.lines, s.lines[i+1:]...)
	return next
}

// UpdateQuantity replaces the quantity of line i.
func (s LineSet) UpdateQuantity(i, qty int) LineSet {
	if i < 0 || i >= len(s.lines) {
		return s
	}
	next := s.clone()
	next.lines[i].Quantity = qty
	return next
}

// UpdateUnitPrice replaces the unit price of line i. Passing nil clears the
// operator's price, which re-arms seeding on the next resolution.
func (s LineSet) UpdateUnitPrice(i int, price *directory.Amount) LineSet {
	if i < 0 || i >= len(s.lines) {
		return s
	}
	next := s.clone()
	if price != nil {
		p := *price
		next.lines[i].UnitPrice = &p
	} else {
		next.lines[i].UnitPrice = nil
	}
	return next
}

// ResolveProductFromID routes an id-channel edit on line i through the
// resolver, seeding the unit price when the line is still unpriced.
func (s LineSet) ResolveProductFromID(i int, idText string, r *Resolver) LineSet {
	if i < 0 || i >= len(s.lines) {
		return s
	}
	next := s.clone()
	next.lines[i].Product = r.ResolveFromID(next.lines[i].Product, idText)
	next.lines[i] = seedPrice(next.lines[i])
	return next
}

// ResolveProductFromName routes a name-channel edit on line i through the
// resolver, seeding the unit price when the line is still unpriced.
func (s LineSet) ResolveProductFromName(i int, nameText string, r *Resolver) LineSet {
	if i < 0 || i >= len(s.lines) {
		return s
	}
	next := s.clone()
	next.lines[i].Product = r.ResolveFromName(next.lines[i].Product, nameText)
	next.lines[i] = seedPrice(next.lines[i])
	return next
}

// Total sums the derived subtotals of every line.
func (s LineSet) Total() directory.Amount {
	var total directory.Amount
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// seedPrice copies the resolved product's list price onto an unpriced line.
// An operator-edited price always takes precedence.
func seedPrice(l OrderLine) OrderLine {
	if l.UnitPrice != nil || l.Product.Entity == nil || l.Product.Entity.SalePrice == nil {
		return l
	}
	p := *l.Product.Entity.SalePrice
	l.UnitPrice = &p
	return l
}
