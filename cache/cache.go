// Package cache provides catalog cache implementations for polingo.
//
// All implementations satisfy the polingo.Cache capability: Get, Set, Has
// and Clear, keyed by the canonical "{locale}:{domain}" string. None of
// them fail under normal operation; adapters over fallible stores (Redis)
// neutralize backend errors internally by failing open to memory.
package cache

import "github.com/polingo/polingo"

// TranslationCache is the catalog cache capability consumed by the
// Translator. It is an alias of polingo.Cache for convenience.
type TranslationCache = polingo.Cache
