// Package gerber estimates board geometry from Gerber RS-274X (and Excellon
// drill) text by pattern matching.
//
// This is not a conformant Gerber interpreter: aperture definitions, draw and
// flash operations, arcs and step-and-repeat are ignored. Only coordinate
// words are scanned, which is enough to estimate the extent of an outline.
package gerber
