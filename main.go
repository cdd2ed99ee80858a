// main is the entry point for the apptriage CLI.
package main

import (
	"os"

	"github.com/Texasdada13/apptriage/cmd"
	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/internal/snapshot"
)

func main() {
	cmd.SetStoreManager(snapshot.Manager)

	err := cmd.Execute()
	snapshot.CloseStores()
	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
