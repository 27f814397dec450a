// Package loader reads curriculum definition files and writes them back.
//
// A definition names the curriculum and lists its courses in vertex order.
// Each course carries its requisites by id; a requisite may name a course
// defined later in the file. A course with members is loaded as a
// course.Collection.
//
// Supported formats, chosen by file extension:
//
//	.yaml .yml   gopkg.in/yaml.v3
//	.toml        github.com/pelletier/go-toml/v2
//	.json        encoding/json
//	.hcl         github.com/hashicorp/hcl/v2 (gohcl decode, hclwrite encode)
//
// YAML shape:
//
//	name: Computer Science
//	courses:
//	  - id: CS1
//	    name: Programming I
//	    credits: 3
//	  - id: CS2
//	    name: Programming II
//	    credits: 3
//	    requisites:
//	      - {id: CS1, kind: pre}
//
// HCL shape:
//
//	name = "Computer Science"
//	course "CS1" {
//	  name    = "Programming I"
//	  credits = 3
//	}
//	course "CS2" {
//	  name    = "Programming II"
//	  credits = 3
//	  requisite "CS1" { kind = "pre" }
//	}
//
// Decoding is strict: unknown keys are errors in YAML and JSON.
package loader
