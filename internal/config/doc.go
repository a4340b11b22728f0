// Package config loads the optional YAML configuration of multikey-generator.
//
// Command line flags override every value read from the file.
//
// # Schema Overview
//
//	version: "1"
//	containers:
//	  package: nmaps
//	  output: ./generated/nmaps
//	  from: 7
//	  to: 253
//	  workers: 8
//	  comments: true
//	primitives:
//	  templates: ./generators
//	  output: ./generated/prims
//	  categories: integer,float
//
// Omitted keys take the defaults of gen.DefaultGeneratorConfig and
// primitive.DefaultConfig.
package config
