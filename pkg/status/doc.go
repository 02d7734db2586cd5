/*
Package status renders migration runs for humans.

	+-------------+   FileReport   +-----------------+
	|  operation  | -------------> | ConsoleReporter |
	|  (Execute)  |    Result      |                 |
	+-------------+ -------------> +--------+--------+
	                                        |
	                          +-------------+-------------+
	                          |                           |
	                    +-----+------+             +------+------+
	                    | log.Logger |             | pterm table |
	                    | (per file) |             |  (summary)  |
	                    +------------+             +-------------+

🎯 Purpose:
- One status line per workflow file while a run is in progress
- Colored line diffs for dry runs
- A summary table and next steps once the run is finished

🤝 Interfaces:
- ConsoleReporter implements operation.Reporter
- Formatter turns outcomes and progress into short messages
*/
package status
