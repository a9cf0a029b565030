/*
Package operation runs a complete fix-up pass over an input directory.

	+-------------+      +-------------+      +-------------+
	|   config    | ---> | correction  | ---> |   record    |
	| (validate)  |      |   (table)   |      | (classify)  |
	+-------------+      +-------------+      +------+------+
	                                                 |
	                                          +------+------+
	                                          |   Fixup     |
	                                          |  Operation  |
	                                          +------+------+
	                                                 |
	                                   +-------------+-------------+
	                                   |                           |
	                            +------+------+             +------+------+
	                            |   status    |             |     log     |
	                            |  (write +   |             |  (console)  |
	                            |   tally)    |             +-------------+
	                            +-------------+

🎯 Purpose:
- Checks the three paths before touching anything
- Loads the correction table and lists the input directory once
- Patches patient records first, then submission reports
- Writes only records whose TAN is in the table

⚡ Error policy:
- Missing paths, an unreadable table or an empty table stop the run
- Anything that goes wrong with a single file is printed, counted and skipped
- Identifier problems are warnings; read, parse and write failures are errors

🔍 Example:

	summary, err := operation.Run(ctx, operation.Options{
		Config: &config.Config{TablePath: "fix.csv", InputDir: "in", OutputDir: "out"},
		Logger: log.New(os.Stdout, os.Stderr, *zerolog.Ctx(ctx)),
	})
*/
package operation
