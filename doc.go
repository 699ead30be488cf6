// Package hmm is the Composition Root for the hmm thought journal.
//
// It connects the core store logic (pkg/core) with the CSV file adapter
// (pkg/adapters/fs) behind a small set of functional options.
//
// Thoughts are short dated notes with an optional tag string, kept in a
// single comma separated file:
//
//	id,timestamp,message,tags
//	1,2024-05-01,buy milk,
//	2,2024-05-01,call mom,family
//
// Every operation loads the file, applies at most one change and writes the
// whole file back atomically.
//
// Usage:
//
//	svc, err := hmm.New("./notes", hmm.WithAutoInit(true))
//
//	// Capture a thought
//	t, err := svc.Add(ctx, "call mom", "family")
//
//	// List by tag substring
//	listing, err := svc.List(ctx, "fam")
package hmm
