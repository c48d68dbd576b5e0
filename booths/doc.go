// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package booths holds the static booth registry.

Booths are not persisted: the event's stations are fixed at process
start, so the registry is an in-memory, read-only list. Handlers
receive it by injection:

	reg := booths.Default()
	handler := handlers.NewBoothHandler(reg)

# Operations

  - ListPublic: id, name, description for every booth, in order -
    this is the only booth shape clients ever see
  - FindByID: full definition including the gating password, used
    solely to verify completion requests

A completion request naming an unknown booth id is rejected by the
handler before any storage write; there is no foreign key from
completions to a booth table.
*/
package booths
