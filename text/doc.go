// Package text provides font loading and text measurement for forms
// components.
//
// A FontSource is a parsed TTF/OTF file; one source creates Face
// instances at different sizes. Measure computes the pixel box of a
// (possibly multi-line) string, which is what content-aligned sizing
// consumes.
//
// Advance computation is pluggable through the Measurer interface:
// BuiltinMeasurer uses golang.org/x/image/font directly, and
// HarfbuzzMeasurer opts into go-text/typesetting shaping for text that
// benefits from kerning, ligatures, or complex scripts.
package text
