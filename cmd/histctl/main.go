// Command histctl checks histogram configurations, builds output files from
// them and inspects the result.
package main

func main() {
	execute()
}
