package services

import (
	"errors"
	"testing"
	"time"

	"homifyhub_server/lib"
	"homifyhub_server/structs/tables"

	"github.com/google/uuid"
)

func makeBatches(quantities ...int) []*tables.Stock {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	batches := make([]*tables.Stock, len(quantities))
	for i, q := range quantities {
		batches[i] = &tables.Stock{
			Id:        uuid.New(),
			Quantity:  q,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return batches
}

func TestPlanFIFOAllocationSingleBatch(t *testing.T) {
	batches := makeBatches(10)

	plan, err := planFIFOAllocation(batches, 4)
	if err != nil {
		t.Fatalf("planFIFOAllocation() = %v", err)
	}
	if len(plan) != 1 {
		t.Fatalf("len(plan) = %d, want 1", len(plan))
	}
	if plan[0].StockId != batches[0].Id || plan[0].Quantity != 4 {
		t.Fatalf("plan[0] = %+v, want 4 from oldest batch", plan[0])
	}
}

func TestPlanFIFOAllocationSpansBatches(t *testing.T) {
	batches := makeBatches(3, 5, 10)

	plan, err := planFIFOAllocation(batches, 7)
	if err != nil {
		t.Fatalf("planFIFOAllocation() = %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("len(plan) = %d, want 2", len(plan))
	}
	if plan[0].Quantity != 3 || plan[0].StockId != batches[0].Id {
		t.Fatalf("plan[0] = %+v, want all 3 from oldest batch", plan[0])
	}
	if plan[1].Quantity != 4 || plan[1].StockId != batches[1].Id {
		t.Fatalf("plan[1] = %+v, want 4 from next batch", plan[1])
	}
}

func TestPlanFIFOAllocationExactFit(t *testing.T) {
	batches := makeBatches(2, 3)

	plan, err := planFIFOAllocation(batches, 5)
	if err != nil {
		t.Fatalf("planFIFOAllocation() = %v", err)
	}

	total := 0
	for _, take := range plan {
		total += take.Quantity
	}
	if total != 5 {
		t.Fatalf("allocated %d units, want 5", total)
	}
}

func TestPlanFIFOAllocationSkipsNonPositiveBatches(t *testing.T) {
	batches := makeBatches(0, -4, 6)

	plan, err := planFIFOAllocation(batches, 5)
	if err != nil {
		t.Fatalf("planFIFOAllocation() = %v", err)
	}
	if len(plan) != 1 {
		t.Fatalf("len(plan) = %d, want 1", len(plan))
	}
	if plan[0].StockId != batches[2].Id || plan[0].Quantity != 5 {
		t.Fatalf("plan[0] = %+v, want 5 from the only positive batch", plan[0])
	}
}

func TestPlanFIFOAllocationInsufficientStock(t *testing.T) {
	batches := makeBatches(2, -10, 1)

	_, err := planFIFOAllocation(batches, 5)
	if !errors.Is(err, lib.ErrInsufficientStock) {
		t.Fatalf("planFIFOAllocation() = %v, want ErrInsufficientStock", err)
	}
}

func TestPlanFIFOAllocationZeroQuantity(t *testing.T) {
	plan, err := planFIFOAllocation(makeBatches(3), 0)
	if err != nil {
		t.Fatalf("planFIFOAllocation() = %v", err)
	}
	if len(plan) != 0 {
		t.Fatalf("len(plan) = %d, want 0", len(plan))
	}
}
