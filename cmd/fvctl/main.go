// Command fvctl exercises fixed-capacity vectors: randomized differential
// checks against a slice model and allocator benchmarks.
package main

func main() {
	execute()
}
