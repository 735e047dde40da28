// Package generation holds the provider-independent core of passport
// generation: compiling the prompt sent to a text-generation provider and
// turning the provider's raw text back into a validated domain.PassportDocument.
//
// Provider access is expressed through the TextGenerator and ImageGenerator
// interfaces so the Gemini and Vertex AI adapters in platform/gemini can be
// swapped for stubs in tests.
package generation
