// Command curricula analyses curriculum definition files.
//
//	curricula analyze cs.yaml ee.toml --format json
//	curricula order cs.yaml
//	curricula path cs.yaml --from CS1 --to CS4
//	curricula reach cs.yaml CS2 --direction to
//	curricula validate *.yaml
//	curricula diagram cs.hcl > cs.mmd
//	curricula convert cs.yaml --to hcl
//
// Settings come from flags, CURRICULA_* environment variables, and an
// optional curricula.yaml in the working directory, in that order of
// precedence.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:]))
}
