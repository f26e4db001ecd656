// Command sqlyte opens a sqlyte-db database file and drives an interactive
// shell over it: insert, select, and the .btree/.constants/.help/.exit
// meta-commands.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/winterrdog/sqlyte-db/internal/pager"
	"github.com/winterrdog/sqlyte-db/internal/shell"
	"github.com/winterrdog/sqlyte-db/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: sqlyte <db_file> [cache_pages]")
		os.Exit(1)
	}

	cachePages := pager.TableMaxPages
	if len(os.Args) >= 3 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "invalid cache_pages %q\n", os.Args[2])
			os.Exit(1)
		}
		cachePages = n
	}

	table, err := storage.Open(os.Args[1], cachePages)
	if err != nil {
		log.Fatalf("fatal: %+v", errors.Wrap(err, "open database"))
	}

	if err := shell.Run(os.Stdin, os.Stdout, os.Stderr, table); err != nil {
		log.Fatalf("fatal: %+v", errors.Wrap(err, "shell"))
	}
}
