package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent repository work. A login burst can race several fetch-or-create
// calls for the same profile; funneling them through one group guarantees a
// single row is created while the other callers wait for the result.

import "golang.org/x/sync/singleflight"

// ProfileGroup deduplicates profile fetch-or-create requests keyed by the
// lowercased player email.
var ProfileGroup singleflight.Group

// LeaderboardGroup deduplicates leaderboard reads keyed by the requested
// page size, so a scoreboard refresh storm costs one query.
var LeaderboardGroup singleflight.Group
