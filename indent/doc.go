// Package indent implements the line-local indentation heuristics used by the
// editor: a stack-based reformatter for whole documents and the continuation
// indent inserted on Enter.
//
// Both operate on trimmed text only. Nothing here parses source code; braces
// and trailing colons are the only structure that is recognized.
package indent
