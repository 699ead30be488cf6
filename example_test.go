package hmm_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aretw0/hmm"
)

// Example_basic adds a few thoughts, filters them by tag and removes one.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "hmm-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	clock := func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

	svc, err := hmm.New(tmpDir, hmm.WithAutoInit(true), hmm.WithClock(clock))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	for _, in := range []struct{ message, tags string }{
		{"buy milk", ""},
		{"call mom", "family"},
		{"plan the trip", "family travel"},
	} {
		t, err := svc.Add(ctx, in.message, in.tags)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("added #%d\n", t.ID)
	}

	listing, err := svc.List(ctx, "fam")
	if err != nil {
		log.Fatal(err)
	}
	for _, t := range listing.Thoughts {
		fmt.Printf("#%d %s [%s] %s\n", t.ID, t.Timestamp, t.Tags, t.Message)
	}

	removed, err := svc.Remove(ctx, "1")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("removed:", removed)

	next, err := svc.Add(ctx, "after removal", "")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("added #%d\n", next.ID)

	// Output:
	// added #1
	// added #2
	// added #3
	// #2 2024-05-01 [family] call mom
	// #3 2024-05-01 [family travel] plan the trip
	// removed: true
	// added #4
}
