// Package gemini provides implementations of the generation.TextGenerator and
// generation.ImageGenerator interfaces on top of Google's genai SDK.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting passport generation to Google's hosted models without exposing
// SDK types to the rest of the application. The same adapters serve both
// genai backends:
//
//   - the Gemini API, authenticated with an API key
//   - Vertex AI, addressed by Google Cloud project and location
//
// SDK failures are translated into the generation package's error kinds:
// deadlines become generation.ErrTransientFailure, safety blocks become
// generation.ErrContentBlocked, empty responses become
// generation.ErrMalformedOutput and everything else becomes
// generation.ErrProviderFailure.
package gemini
