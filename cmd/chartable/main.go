// Command chartable prints character tables of the symmetric groups.
//
// Usage:
//
//	chartable table 5                 # text table of S_5
//	chartable table 6 --format yaml   # YAML document
//	chartable table 8 --verify        # also check row orthogonality
//	chartable value 3,2,1 3,3         # one entry χ_λ(ρ)
//	chartable partitions 4            # partitions of 4 in table order
//
// A YAML config file (--config) may set max_degree, format and verify;
// explicit flags take precedence.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
