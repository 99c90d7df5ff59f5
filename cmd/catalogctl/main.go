package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/catalogkeeper/internal/admin"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/config"
)

func main() {

	cfg := config.LoadFromEnv()
	cmd := admin.NewRootCommand(admin.PostgresOpener(cfg), os.Stdin, os.Stdout)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
