// Package imaging provides the portrait step of passport generation. A
// Pipeline either does nothing (text-only passports) or renders a portrait
// from the document's English image prompt and hosts it in an image store.
package imaging
