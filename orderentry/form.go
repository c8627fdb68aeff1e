package orderentry

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-order-entry-cache/directory"
	"github.com/goliatone/go-order-entry-cache/stream"
)

// OrderForm is the session state of one open sale or repair form: the client
// identity pair, the order lines, and the indexes built from the option
// lists. Input edits arrive through the debounced Set* methods so a typing
// burst resolves once, after the quiescence window.
type OrderForm struct {
	mu sync.Mutex

	clients  *Resolver
	products *Resolver

	client ResolutionState
	lines  LineSet

	debouncer *stream.Debouncer
	delay     time.Duration
}

// NewOrderForm builds the form's indexes from the given option lists. Pass
// delay <= 0 to use the default quiescence window.
func NewOrderForm(clients, products []directory.Entity, debouncer *stream.Debouncer, delay time.Duration) *OrderForm {
	if delay <= 0 {
		delay = stream.DefaultDebounce
	}
	return &OrderForm{
		clients:   NewResolver(BuildIndex(clients)),
		products:  NewResolver(BuildIndex(products)),
		client:    ResolutionState{},
		lines:     NewLineSet(),
		debouncer: debouncer,
		delay:     delay,
	}
}

// ReplaceOptions rebuilds both indexes after the option lists changed. The
// old indexes are discarded wholesale; they are never patched.
func (f *OrderForm) ReplaceOptions(clients, products []directory.Entity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients.Rebind(BuildIndex(clients))
	f.products.Rebind(BuildIndex(products))
}

// SetClientID feeds a client id-channel edit through the debouncer.
func (f *OrderForm) SetClientID(text string) {
	f.debouncer.Trigger("client:id", f.delay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.client = f.clients.ResolveFromID(f.client, text)
	})
}

// SetClientName feeds a client name-channel edit through the debouncer.
func (f *OrderForm) SetClientName(text string) {
	f.debouncer.Trigger("client:name", f.delay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.client = f.clients.ResolveFromName(f.client, text)
	})
}

// SetLineProductID feeds a product id-channel edit for line i through the
// debouncer.
func (f *OrderForm) SetLineProductID(i int, text string) {
	f.debouncer.Trigger(fmt.Sprintf("line:%d:id", i), f.delay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.lines = f.lines.ResolveProductFromID(i, text, f.products)
	})
}

// SetLineProductName feeds a product name-channel edit for line i through the
// debouncer.
func (f *OrderForm) SetLineProductName(i int, text string) {
	f.debouncer.Trigger(fmt.Sprintf("line:%d:name", i), f.delay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.lines = f.lines.ResolveProductFromName(i, text, f.products)
	})
}

// ChooseLineProduct binds line i to a product picked directly from the option
// list, bypassing the debouncer. Both input channels are synchronized and the
// price is seeded as on any other resolution hit.
func (f *OrderForm) ChooseLineProduct(i int, id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = f.lines.ResolveProductFromID(i, fmt.Sprintf("%d", id), f.products)
}

// AddLine appends a blank order line.
func (f *OrderForm) AddLine() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = f.lines.AddLine()
}

// RemoveLine removes line i unless it is the last one left.
func (f *OrderForm) RemoveLine(i int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = f.lines.RemoveLine(i)
}

// SetLineQuantity replaces the quantity of line i immediately.
func (f *OrderForm) SetLineQuantity(i, qty int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = f.lines.UpdateQuantity(i, qty)
}

// SetLineUnitPrice replaces the unit price of line i immediately.
func (f *OrderForm) SetLineUnitPrice(i int, price *directory.Amount) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = f.lines.UpdateUnitPrice(i, price)
}

// SetLineUnitPriceText parses an operator-typed price for line i. Empty text
// clears the price, which re-arms seeding on the next resolution. A malformed
// value is rejected and the line is left unchanged.
func (f *OrderForm) SetLineUnitPriceText(i int, text string) error {
	if strings.TrimSpace(text) == "" {
		f.SetLineUnitPrice(i, nil)
		return nil
	}
	amount, err := directory.ParseAmount(text)
	if err != nil {
		return err
	}
	f.SetLineUnitPrice(i, &amount)
	return nil
}

// Client returns the current client resolution state.
func (f *OrderForm) Client() ResolutionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.client
}

// Lines returns a copy of the current order lines.
func (f *OrderForm) Lines() []OrderLine {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lines.Lines()
}

// Total returns the derived aggregate total.
func (f *OrderForm) Total() directory.Amount {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lines.Total()
}
