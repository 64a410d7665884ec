// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/surfacegen/cmd/surfacegen"

func main() {
	cmd.Execute()
}
