// Package policy provides optional declarative rules that can be applied on
// top of a lockor run – the form sentinels, the acceptable floor range and
// the partner-only floor restriction.
package policy
