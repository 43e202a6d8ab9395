// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draft persists the in-progress answers between runs.

The draft lives in one slot named SlotKey. It is advisory local state: a
missing, unreadable or malformed slot loads as an empty answer set, and
failed writes are logged and ignored, so the form always works without it.

	store := draft.NewFileStore(dir)
	answers := store.Load()
	store.Save(answers)
	store.Clear()

MemoryStore implements the same contract in memory for tests.
*/
package draft
