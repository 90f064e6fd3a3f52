// Command smctpd runs the SM-CPTD scheduling engine against a small
// built-in demo workflow (the out-of-scope XML/CSV ingestion collaborator
// spec.md §1/§6 anticipates but does not define) and prints or serves the
// resulting metrics.
package main

func main() {
	Execute()
}
