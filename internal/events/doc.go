// Package events defines the discovery-log exchanged with the header
// importer.
//
// The importer hook appends one entry per declaration it visits while
// importing C headers: a composite entry for each struct or union, an
// alias entry for each typedef. The log carries no ordering guarantee;
// replaying it through the mapping reconciler yields the same
// aggregate for any entry order.
//
// Log format (YAML):
//
//	version: "1"
//	events:
//	  - composite:
//	      internal_name: BmpCommonHdr
//	      kind: struct
//	      original_name: bmp_common_hdr
//	  - alias:
//	      name: bmp_common_hdr_t
//	      target: BmpCommonHdr
package events
