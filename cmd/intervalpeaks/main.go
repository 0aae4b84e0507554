// Command intervalpeaks finds ranked spectral peaks in WAV files or
// synthetic tone mixes.
package main

import "github.com/cwbudde/algo-interval/internal/cli"

func main() {
	cli.Execute()
}
