package cards

import "fmt"

// Chain links pages in order so that each page's Next is the following one.
// The last page's Next is left untouched. Chain refuses links that would
// create a cycle; pages linked before the failing pair stay linked.
func Chain(pages ...*Page) error {
	for i := 0; i+1 < len(pages); i++ {
		if err := Link(pages[i], pages[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// Link sets from's forward link to to. Passing a nil to clears the link.
func Link(from, to *Page) error {
	if from == nil {
		return fmt.Errorf("cards: link: %w", ErrNilPage)
	}
	for p := to; p != nil; p = p.next {
		if p == from {
			return fmt.Errorf("cards: link %q -> %q: %w", from.ID, to.ID, ErrCycle)
		}
	}
	from.next = to
	return nil
}
