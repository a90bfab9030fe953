package pnl

// lot is the unconsumed portion of a single historical buy, tracked with its
// original unit price for cost basis matching.
type lot struct {
	quantity Quantity
	price    Money // unit price of the original buy
}

// lotQueue is a FIFO queue of lots, oldest at the head. A queue belongs to
// exactly one account's matching pass and is discarded afterwards.
type lotQueue []lot

// enqueue appends a new lot from a buy at the tail.
func (q *lotQueue) enqueue(shares Quantity, price Money) {
	*q = append(*q, lot{quantity: shares, price: price})
}

// sell consumes up to shares from the head of the queue and returns the
// profit realized at sellPrice: the sum of (sellPrice - lot price) × matched
// quantity over every match. A partially consumed head lot keeps its
// original price on the remaining quantity.
//
// If the queue drains before the quantity is filled, the excess is an
// oversell: it matches nothing and contributes no profit.
func (q *lotQueue) sell(shares Quantity, sellPrice Money) Money {
	var realized Money
	remaining := shares
	for remaining.IsPositive() && len(*q) > 0 {
		head := (*q)[0]
		if head.quantity.GreaterThan(remaining) {
			// Partial fill: split the head lot, price unchanged.
			realized = realized.Add(sellPrice.Sub(head.price).Mul(remaining))
			(*q)[0].quantity = head.quantity.Sub(remaining)
			return realized
		}
		// Full consumption of the head lot.
		realized = realized.Add(sellPrice.Sub(head.price).Mul(head.quantity))
		remaining = remaining.Sub(head.quantity)
		*q = (*q)[1:]
	}
	return realized
}
