package shell

import (
	"fmt"
	"io"

	"github.com/winterrdog/sqlyte-db/internal/codec"
	"github.com/winterrdog/sqlyte-db/internal/storage"
)

// unrecognizedCommandError is the one meta-command error the REPL treats
// as recoverable (print to stderr, keep looping); anything else returned
// by ExecuteMetaCommand is a fatal storage error that should abort the
// process per the propagation policy in §7.
type unrecognizedCommandError struct{ cmd string }

func (e *unrecognizedCommandError) Error() string {
	return fmt.Sprintf("unrecognized command '%s'", e.cmd)
}

// ExecuteMetaCommand runs a dot-command against table, writing any output
// to out. It reports whether the command was ".exit".
func ExecuteMetaCommand(cmd string, table *storage.Table, out io.Writer) (exit bool, err error) {
	switch cmd {
	case ".exit":
		return true, nil
	case ".btree":
		fmt.Fprintln(out, "tree:")
		return false, table.PrintTree(out)
	case ".constants":
		printConstants(out)
		return false, nil
	case ".help":
		printHelp(out)
		return false, nil
	default:
		return false, &unrecognizedCommandError{cmd: cmd}
	}
}

func printConstants(out io.Writer) {
	fmt.Fprintln(out, "constants:")
	fmt.Fprintf(out, "ROW_SIZE: %d\n", codec.RowSize)
	fmt.Fprintf(out, "COMMON_NODE_HEADER_SIZE: %d\n", codec.CommonNodeHeaderSize)
	fmt.Fprintf(out, "LEAF_NODE_HEADER_SIZE: %d\n", codec.LeafNodeHeaderSize)
	fmt.Fprintf(out, "LEAF_NODE_CELL_SIZE: %d\n", codec.LeafNodeCellSize)
	fmt.Fprintf(out, "LEAF_NODE_SPACE_FOR_CELLS: %d\n", codec.LeafNodeSpaceForCells)
	fmt.Fprintf(out, "LEAF_NODE_MAX_CELLS: %d\n", codec.LeafNodeMaxCells)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "supported commands:")
	fmt.Fprintln(out, "  insert <id> <username> <email>  add a row")
	fmt.Fprintln(out, "  select                           print every row")
	fmt.Fprintln(out, "  .btree                           print the b-tree structure")
	fmt.Fprintln(out, "  .constants                       print page layout constants")
	fmt.Fprintln(out, "  .exit                            flush and exit")
	fmt.Fprintln(out, "  .help                            print this message")
}
