package main

import "github.com/evermorehealth/portal/cmd/evermore-cli/cmd"

func main() {
	cmd.Execute()
}
