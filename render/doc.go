// Package render draws an ASCII picture of a solved gridpath.Path. It is
// a display-only collaborator: it reads a Path's vertices and reports
// which grid edges it uses, and carries no solver semantics of its own.
package render
