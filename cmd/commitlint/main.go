// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/bartekus/commitlint/cmd/commitlint/commands"
	"github.com/bartekus/commitlint/cmd/commitlint/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		if !clierr.IsReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(clierr.ExitCodeOf(err))
	}
}
