// Command gemini manages game saves and inspects the embedded game data.
package main

import "github.com/mesh-intelligence/gemini/internal/cli"

func main() {
	cli.Execute()
}
