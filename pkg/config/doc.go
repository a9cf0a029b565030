/*
Package config holds the run configuration for dnpm-fixup.

	+------------------+
	|      Config      |
	| table / in / out |
	+--------+---------+
	         |
	    Validate()
	         |
	+--------+---------+
	|  preconditions   |
	| file, dir, dir   |
	+------------------+

🎯 Purpose:
- Carries the correction table path and the input and output directories
- Checks all three before any record is touched

⚡ Fatal conditions:
- ErrTableNotFound: the table path is not a regular file
- ErrInputDirNotFound: the input path is not a directory
- ErrOutputDirNotFound: the output path is not a directory (it is never created)

🔍 Example:

	cfg := &config.Config{
		TablePath: "fixes.csv",
		InputDir:  "export",
		OutputDir: "fixed",
	}
	if err := cfg.Validate(ctx); err != nil {
		return err
	}
*/
package config
