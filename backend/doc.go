// Package backend provides registration and discovery of host
// rendering surfaces for forms.
//
// A Backend is a factory for forms.Renderer instances. Backends
// register themselves from init() functions (backend/software does) and
// applications pick one explicitly by name or take the best available:
//
//	import _ "github.com/gogpu/forms/backend/software"
//
//	b, err := backend.InitDefault()
//	r := b.NewRenderer(640, 480)
package backend
