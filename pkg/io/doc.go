// Package io reads and writes block documents: the attribute records of one
// or more grid-system blocks as the editor stores them.
//
// # Formats
//
// Documents are accepted as JSON, YAML or TOML. [Import] picks the format
// from the file extension (.json, .yaml, .yml, .toml); [Read] takes it
// explicitly. Three shapes are recognised:
//
// A document with a block list, optionally nested through innerBlocks:
//
//	{
//	  "blocks": [
//	    {"name": "grid-system/row", "attributes": {"alignItemsXs": "center"},
//	     "innerBlocks": [
//	       {"name": "grid-system/column", "attributes": {"allSize": 6, "mdSize": 4}}
//	     ]}
//	  ]
//	}
//
// A single block:
//
//	{"name": "column", "attributes": {"allSize": "12", "smSize": "6"}}
//
// Bare attributes, for which the caller names the block:
//
//	allSize: 12
//	smSize: 6
//
// Block names may be short ("spacer"), registered ("responsive-spacer") or
// namespaced ("grid-system/responsive-spacer"); [Read] rejects names that
// match no block kind. Attribute values are kept as decoded. The engine
// accepts strings, numbers, booleans and nulls alike.
//
// # Export
//
// [Write] and [Export] encode a document in any of the three formats, so a
// document can be converted between them.
package io
