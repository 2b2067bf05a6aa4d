// Command riskctl scores a financial profile file from the command line
// without a database or server.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("riskctl failed")
		os.Exit(1)
	}
}
