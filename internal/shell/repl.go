package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/winterrdog/sqlyte-db/internal/storage"
)

const prompt = "lyt-db> "

// Run drives the read-print-execute loop: print the prompt, read one
// line, dispatch it, repeat until ".exit" or EOF. EOF is treated the same
// as ".exit" — flush and return cleanly, rather than discarding pending
// writes.
func Run(in io.Reader, out io.Writer, errOut io.Writer, table *storage.Table) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			return table.Close()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		exit, err := dispatch(line, table, out, errOut)
		if exit {
			return table.Close()
		}
		if err != nil {
			var uce *unrecognizedCommandError
			if errors.As(err, &uce) {
				fmt.Fprintln(errOut, err.Error())
				continue
			}
			return err
		}
	}
}

func dispatch(line string, table *storage.Table, out, errOut io.Writer) (exit bool, err error) {
	if strings.HasPrefix(line, ".") {
		return ExecuteMetaCommand(line, table, out)
	}

	stmt, err := ParseStatement(line)
	if err != nil {
		if err == ErrSyntax {
			fmt.Fprintln(errOut, err.Error())
			return false, nil
		}
		// ErrNegativeID and friends print to stdout, per the source.
		fmt.Fprintln(out, err.Error())
		return false, nil
	}

	return false, execute(stmt, table, out)
}

func execute(stmt Statement, table *storage.Table, out io.Writer) error {
	switch s := stmt.(type) {
	case InsertStatement:
		return executeInsert(s, table, out)
	case SelectStatement:
		return executeSelect(table, out)
	default:
		return fmt.Errorf("unhandled statement type %T", stmt)
	}
}

func executeInsert(s InsertStatement, table *storage.Table, out io.Writer) error {
	row, err := storage.NewRow(uint32(s.ID), s.Username, s.Email)
	if err != nil {
		fmt.Fprintln(out, err.Error()+".")
		return nil
	}

	if err := table.Insert(row); err != nil {
		if err == storage.ErrDuplicateKey {
			fmt.Fprintln(out, "error: duplicate key.")
			return nil
		}
		return err
	}

	fmt.Fprintln(out, "executed.")
	return nil
}

func executeSelect(table *storage.Table, out io.Writer) error {
	err := table.SelectAll(func(row storage.Row) error {
		fmt.Fprintf(out, "( %d, %s, %s )\n", row.ID, row.Username, row.Email)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "executed.")
	return nil
}
