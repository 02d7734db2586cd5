/*
Package operation implements the runs-on migration engine.

	+-------------+
	|  Operation  |
	| (Orchestr.) |
	+------+------+
	       |
	+------+------+------------+
	|             |            |
	+------+  +---+----+  +----+----+
	|Detect|  |Rewrite |  | Backup  |
	+------+  +--------+  +---------+

🔄 Flow (per file, strictly one file at a time):
1. List *.yml files in the workflow directory, sorted by name
2. Skip files matching an ignore glob
3. Read and detect hosted runner references; none means "already compliant"
4. Dry run: rewrite in memory and keep a line diff, write nothing
5. Live: back up the original, rewrite, replace the file through a temp file

⚡ Failure policy:
- Missing workflow directory is fatal before any file is touched (ErrPathNotFound)
- Read, backup and write failures return a *FileError naming the phase and file
- A failed backup always stops that file before its write
- ContinueOnError turns per-file failures into skipped files

🔍 Example:

	op, err := operation.NewMigrateOperation(operation.Options{
		Config:   cfg,
		Reporter: status.NewConsoleReporter(logger, os.Stdout),
	})
	if err != nil {
		return err
	}
	result, err := op.Execute(ctx)
*/
package operation
