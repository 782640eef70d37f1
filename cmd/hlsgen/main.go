// Command hlsgen builds HLS playlists offline from a clip manifest.
//
// Usage:
//
//	hlsgen generate --manifest manifest.json [--seed s] [--text t | --text-file f] [--out file] [--json]
//	hlsgen inspect --manifest manifest.json [--json]
package main

import "github.com/heartmarshall/phrasecast/internal/cli"

func main() {
	cli.Execute()
}
