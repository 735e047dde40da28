// Package domain contains the core entities of the passport service: the
// request a traveler submits, the passport document produced from provider
// output, and the fixed table of visual themes a passport is rendered with.
// It is independent of any provider, storage backend or delivery mechanism.
package domain
