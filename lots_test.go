package pnl

import "testing"

func TestLotQueue_SellMatchesOldestFirst(t *testing.T) {
	// Buys of 10@1 then 5@2, followed by a sell of 12@3:
	// 10 shares match the first lot (profit 10×(3−1)=20), 2 shares match the
	// second (profit 2×(3−2)=2), and 3@2 remain at the head.
	var q lotQueue
	q.enqueue(Q(10), M(1))
	q.enqueue(Q(5), M(2))

	realized := q.sell(Q(12), M(3))

	if want := M(22); !realized.Equal(want) {
		t.Errorf("sell() realized = %s, want %s", realized.Plain(), want.Plain())
	}
	if len(q) != 1 {
		t.Fatalf("sell() left %d lots, want 1", len(q))
	}
	if !q[0].quantity.Equal(Q(3)) {
		t.Errorf("remaining lot quantity = %s, want 3", q[0].quantity)
	}
	if !q[0].price.Equal(M(2)) {
		t.Errorf("remaining lot price = %s, want 2", q[0].price.Plain())
	}
}

func TestLotQueue_PartialFillKeepsPrice(t *testing.T) {
	var q lotQueue
	q.enqueue(Q(100), M(0.4))

	realized := q.sell(Q(30), M(0.6))

	// 30 × (0.6 − 0.4) = 6
	if want := M(6); !realized.Equal(want) {
		t.Errorf("sell() realized = %s, want %s", realized.Plain(), want.Plain())
	}
	// The head lot keeps its original price on the unconsumed quantity.
	if !q[0].quantity.Equal(Q(70)) {
		t.Errorf("remaining quantity = %s, want 70", q[0].quantity)
	}
	if !q[0].price.Equal(M(0.4)) {
		t.Errorf("remaining price = %s, want 0.4", q[0].price.Plain())
	}
}

func TestLotQueue_OversellDropsExcess(t *testing.T) {
	// Selling more than was ever bought consumes every lot; the excess
	// matches nothing and earns nothing.
	var q lotQueue
	q.enqueue(Q(10), M(1))

	realized := q.sell(Q(25), M(2))

	if want := M(10); !realized.Equal(want) {
		t.Errorf("sell() realized = %s, want %s (only the 10 enqueued shares match)", realized.Plain(), want.Plain())
	}
	if len(q) != 0 {
		t.Errorf("sell() left %d lots, want 0", len(q))
	}

	// A further sell against the drained queue realizes nothing.
	if more := q.sell(Q(5), M(9)); !more.IsZero() {
		t.Errorf("sell() on empty queue realized %s, want 0", more.Plain())
	}
}

func TestLotQueue_SellAtLoss(t *testing.T) {
	var q lotQueue
	q.enqueue(Q(10), M(0.8))

	realized := q.sell(Q(10), M(0.5))

	// 10 × (0.5 − 0.8) = −3
	if want := M(-3); !realized.Equal(want) {
		t.Errorf("sell() realized = %s, want %s", realized.Plain(), want.Plain())
	}
}
