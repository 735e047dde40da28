// Package mocks provides hand-written doubles for the provider and storage
// interfaces used by the passport service.
//
// Each mock follows the same shape: an optional XxxFn field that takes over
// the call when set, fixed return values otherwise, and a mutex-guarded
// record of calls so tests can assert a provider was (or was not) reached.
//
// Usage:
//
//	import "github.com/phrazzld/passport-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    text := mocks.NewMockTextGeneratorWithText(mocks.ValidPassportJSON)
//
//	    // Use the mock in your test...
//
//	    assert.Equal(t, 1, text.CallCount())
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Add a compile-time assertion that the mock satisfies the interface
package mocks
